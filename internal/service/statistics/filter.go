package statistics

import "proxima-dashboard/internal/storage"

// AllOrders selects every order, log and invoice.
const AllOrders = "ALL"

func matches(selection, orderID string) bool {
	return selection == AllOrders || orderID == selection
}

// SelectOrders returns the orders matching selection, all of them for ALL.
func SelectOrders(orders []storage.WorkOrder, selection string) []storage.WorkOrder {
	if selection == AllOrders {
		return orders
	}

	var res []storage.WorkOrder
	for _, o := range orders {
		if o.ID == selection {
			res = append(res, o)
		}
	}
	return res
}

// SelectLogs returns the work logs booked on the selected order.
func SelectLogs(logs []storage.WorkLog, selection string) []storage.WorkLog {
	if selection == AllOrders {
		return logs
	}

	var res []storage.WorkLog
	for _, l := range logs {
		if matches(selection, l.OrderID) {
			res = append(res, l)
		}
	}
	return res
}

// SelectInvoices returns the purchase invoices of the selected order.
func SelectInvoices(invoices []storage.PurchaseInvoice, selection string) []storage.PurchaseInvoice {
	if selection == AllOrders {
		return invoices
	}

	var res []storage.PurchaseInvoice
	for _, inv := range invoices {
		if matches(selection, inv.OrderID) {
			res = append(res, inv)
		}
	}
	return res
}
