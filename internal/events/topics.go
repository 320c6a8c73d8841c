package events

import "strconv"

const (
	TopicOrderCreated       = "order.created"
	TopicOrderStatusUpdated = "order.status.updated"
	TopicOrderCancelled     = "order.cancelled"
)

// Partition key = order id, supaya semua event 1 order maintain urutan.
func PartitionKey(orderID int) []byte { return []byte(strconv.Itoa(orderID)) }
