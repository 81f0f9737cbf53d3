package models

type PurchaseOrderStatus string

const (
	POStatusPending  PurchaseOrderStatus = "PENDING"
	POStatusApproved PurchaseOrderStatus = "APPROVED"
	POStatusRejected PurchaseOrderStatus = "REJECTED"
)
