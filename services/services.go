// Package services provides one thin typed client per backend resource. Every
// call goes through the gateway, which handles credential injection and token
// renewal; nothing here retries or touches stored credentials.
package services

import "github.com/MbolafyDev/go-backoffice/gateway"

// Services bundles all resource clients over a shared gateway.
type Services struct {
	Clients    *ClientsService
	Articles   *ArticlesService
	Purchases  *PurchasesService
	Sales      *SalesService
	Delivery   *DeliveryService
	Shipments  *ShipmentsService
	Cashdesk   *CashdeskService
	Invoices   *InvoicesService
	Expenses   *ExpensesService
	AppConfig  *AppConfigService
	AdminUsers *AdminUsersService
	Dashboard  *DashboardService
}

func New(gw *gateway.Gateway) *Services {
	return &Services{
		Clients:    NewClients(gw),
		Articles:   NewArticles(gw),
		Purchases:  NewPurchases(gw),
		Sales:      NewSales(gw),
		Delivery:   NewDelivery(gw),
		Shipments:  NewShipments(gw),
		Cashdesk:   NewCashdesk(gw),
		Invoices:   NewInvoices(gw),
		Expenses:   NewExpenses(gw),
		AppConfig:  NewAppConfig(gw),
		AdminUsers: NewAdminUsers(gw),
		Dashboard:  NewDashboard(gw),
	}
}
