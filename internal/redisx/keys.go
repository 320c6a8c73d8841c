package redisx

import "time"

const (
	// Cache enriched order view: order_view:{order_id} -> response body JSON
	KeyOrderView = "order_view:%d"
)

// TTL pendek membatasi staleness kalau user/product di-rename; mutasi
// order sendiri langsung DEL key-nya.
var TTLOrderView = 5 * time.Minute
