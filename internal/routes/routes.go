package routes

const (
	// Health
	Health = "/health"

	// Auth
	AuthRegister       = "/api/Auth/register"
	AuthLogin          = "/api/Auth/login"
	AuthConfirmEmail   = "/api/Auth/confirm-email"
	AuthForgotPassword = "/api/Auth/forgot-password"
	AuthResetPassword  = "/api/Auth/reset-password"

	// Staff-facing entity CRUD
	ClientsBase  = "/api/Cliente"
	ClientsByID  = "/api/Cliente/{id:[0-9]+}"
	PickupsBase  = "/api/Coleta"
	PickupsByID  = "/api/Coleta/{id:[0-9]+}"
	WasteBase    = "/api/Residuo"
	WasteByID    = "/api/Residuo/{id:[0-9]+}"
	ProductsBase = "/api/Produto"
	ProductsByID = "/api/Produto/{id:[0-9]+}"
	StaffBase    = "/api/Funcionario"
	StaffByID    = "/api/Funcionario/{id:[0-9]+}"
	DriversBase  = "/api/Motorista"
	DriversByID  = "/api/Motorista/{id:[0-9]+}"
	VehiclesBase = "/api/Veiculo"
	VehiclesByID = "/api/Veiculo/{id:[0-9]+}"
	SchedBase    = "/api/Agendamento"
	SchedByID    = "/api/Agendamento/{id:[0-9]+}"

	// Client self-service
	ClientMe              = "/api/Cliente/me"
	ClientMeRequestPickup = "/api/Cliente/me/solicita-coleta"
	ClientMePickups       = "/api/Cliente/me/coletas"
	ClientMePickupByID    = "/api/Cliente/me/coletas/{id:[0-9]+}"
)
