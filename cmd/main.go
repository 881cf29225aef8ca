package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/ecogestao/erp-backend/internal/app"
	"github.com/ecogestao/erp-backend/internal/config"
	"github.com/ecogestao/erp-backend/internal/controllers"
	"github.com/ecogestao/erp-backend/internal/middleware"
	"github.com/ecogestao/erp-backend/internal/models"
	"github.com/ecogestao/erp-backend/internal/routes"
	"github.com/ecogestao/erp-backend/internal/services"
	"github.com/ecogestao/erp-backend/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize erp-backend:", err)
	}
	defer application.Close()

	ctx := context.Background()
	if err := app.SeedRoles(ctx, application.DB); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to seed roles")
	}
	if err := app.SeedDefaultAdmin(ctx, application.DB, cfg); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to seed default admin")
	}

	emailSvc := services.NewSendGridEmailService(cfg)

	userService := services.NewUserService(application.DB, cfg, emailSvc)
	clientService := services.NewClientService(application.DB)
	pickupService := services.NewPickupService(application.DB)
	wasteService := services.NewWasteItemService(application.DB)
	productService := services.NewProductService(application.DB)
	employeeService := services.NewEmployeeService(application.DB)
	driverService := services.NewDriverService(application.DB)
	vehicleService := services.NewVehicleService(application.DB)
	scheduleService := services.NewScheduleService(application.DB)

	validate := controllers.NewValidator()

	authController := controllers.NewAuthController(userService, validate)
	clientController := controllers.NewClientController(clientService, pickupService, validate)
	pickupController := controllers.NewPickupController(pickupService, validate)
	wasteController := controllers.NewWasteItemController(wasteService, validate)
	productController := controllers.NewProductController(productService, validate)
	employeeController := controllers.NewEmployeeController(employeeService, validate)
	driverController := controllers.NewDriverController(driverService, validate)
	vehicleController := controllers.NewVehicleController(vehicleService, validate)
	scheduleController := controllers.NewScheduleController(scheduleService, validate)
	healthController := controllers.NewHealthController(application.DB)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.Check).Methods(http.MethodGet)
	router.HandleFunc(routes.AuthRegister, authController.Register).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthLogin, authController.Login).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthConfirmEmail, authController.ConfirmEmail).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc(routes.AuthForgotPassword, authController.ForgotPassword).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthResetPassword, authController.ResetPassword).Methods(http.MethodPost)

	authn := middleware.Authenticate(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleFuncionario)
	clientOnly := middleware.RequireRole(models.RoleCliente)

	// Staff surface: everything here is off-limits to the Cliente role.
	staff := router.NewRoute().Subrouter()
	staff.Use(authn, staffOnly)

	staff.HandleFunc(routes.ClientsBase, clientController.Create).Methods(http.MethodPost)
	staff.HandleFunc(routes.ClientsBase, clientController.GetAll).Methods(http.MethodGet)
	staff.HandleFunc(routes.ClientsByID, clientController.GetByID).Methods(http.MethodGet)
	staff.HandleFunc(routes.ClientsByID, clientController.Update).Methods(http.MethodPut)
	staff.HandleFunc(routes.ClientsByID, clientController.Delete).Methods(http.MethodDelete)

	staff.HandleFunc(routes.PickupsBase, pickupController.Create).Methods(http.MethodPost)
	staff.HandleFunc(routes.PickupsBase, pickupController.GetAll).Methods(http.MethodGet)
	staff.HandleFunc(routes.PickupsByID, pickupController.GetByID).Methods(http.MethodGet)
	staff.HandleFunc(routes.PickupsByID, pickupController.Update).Methods(http.MethodPut)
	staff.HandleFunc(routes.PickupsByID, pickupController.Delete).Methods(http.MethodDelete)

	staff.HandleFunc(routes.WasteBase, wasteController.Create).Methods(http.MethodPost)
	staff.HandleFunc(routes.WasteBase, wasteController.GetAll).Methods(http.MethodGet)
	staff.HandleFunc(routes.WasteByID, wasteController.GetByID).Methods(http.MethodGet)
	staff.HandleFunc(routes.WasteByID, wasteController.Update).Methods(http.MethodPut)
	staff.HandleFunc(routes.WasteByID, wasteController.Delete).Methods(http.MethodDelete)

	staff.HandleFunc(routes.ProductsBase, productController.Create).Methods(http.MethodPost)
	staff.HandleFunc(routes.ProductsBase, productController.GetAll).Methods(http.MethodGet)
	staff.HandleFunc(routes.ProductsByID, productController.GetByID).Methods(http.MethodGet)
	staff.HandleFunc(routes.ProductsByID, productController.Update).Methods(http.MethodPut)
	staff.HandleFunc(routes.ProductsByID, productController.Delete).Methods(http.MethodDelete)

	staff.HandleFunc(routes.StaffBase, employeeController.Create).Methods(http.MethodPost)
	staff.HandleFunc(routes.StaffBase, employeeController.GetAll).Methods(http.MethodGet)
	staff.HandleFunc(routes.StaffByID, employeeController.GetByID).Methods(http.MethodGet)
	staff.HandleFunc(routes.StaffByID, employeeController.Update).Methods(http.MethodPut)
	staff.HandleFunc(routes.StaffByID, employeeController.Delete).Methods(http.MethodDelete)

	staff.HandleFunc(routes.DriversBase, driverController.Create).Methods(http.MethodPost)
	staff.HandleFunc(routes.DriversBase, driverController.GetAll).Methods(http.MethodGet)
	staff.HandleFunc(routes.DriversByID, driverController.GetByID).Methods(http.MethodGet)
	staff.HandleFunc(routes.DriversByID, driverController.Update).Methods(http.MethodPut)
	staff.HandleFunc(routes.DriversByID, driverController.Delete).Methods(http.MethodDelete)

	staff.HandleFunc(routes.VehiclesBase, vehicleController.Create).Methods(http.MethodPost)
	staff.HandleFunc(routes.VehiclesBase, vehicleController.GetAll).Methods(http.MethodGet)
	staff.HandleFunc(routes.VehiclesByID, vehicleController.GetByID).Methods(http.MethodGet)
	staff.HandleFunc(routes.VehiclesByID, vehicleController.Update).Methods(http.MethodPut)
	staff.HandleFunc(routes.VehiclesByID, vehicleController.Delete).Methods(http.MethodDelete)

	staff.HandleFunc(routes.SchedBase, scheduleController.Create).Methods(http.MethodPost)
	staff.HandleFunc(routes.SchedBase, scheduleController.GetAll).Methods(http.MethodGet)
	staff.HandleFunc(routes.SchedByID, scheduleController.GetByID).Methods(http.MethodGet)
	staff.HandleFunc(routes.SchedByID, scheduleController.Update).Methods(http.MethodPut)
	staff.HandleFunc(routes.SchedByID, scheduleController.Delete).Methods(http.MethodDelete)

	// Client self-service surface, scoped by the token's subject.
	selfService := router.NewRoute().Subrouter()
	selfService.Use(authn, clientOnly)

	selfService.HandleFunc(routes.ClientMe, clientController.Me).Methods(http.MethodGet)
	selfService.HandleFunc(routes.ClientMe, clientController.UpdateMe).Methods(http.MethodPut)
	selfService.HandleFunc(routes.ClientMeRequestPickup, clientController.RequestPickup).Methods(http.MethodPost)
	selfService.HandleFunc(routes.ClientMePickups, clientController.MyPickups).Methods(http.MethodGet)
	selfService.HandleFunc(routes.ClientMePickupByID, clientController.MyPickupByID).Methods(http.MethodGet)
	selfService.HandleFunc(routes.ClientMePickupByID, clientController.UpdateMyPickup).Methods(http.MethodPut)
	selfService.HandleFunc(routes.ClientMePickupByID, clientController.DeleteMyPickup).Methods(http.MethodDelete)

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("erp-backend failed to start:", err)
	}
}
