package services

// ServiceContainer aggregates every service facade for dependency injection
// into the route registration layer.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	User      UserSvcFacade
	Staff     StaffSvcFacade
	Category  CategorySvcFacade
	Event     EventSvcFacade
	Booking   BookingSvcFacade
	Reporting ReportingSvcFacade
}
