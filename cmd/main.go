package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"coldmart/internal/config"
	"coldmart/internal/handlers"
	"coldmart/internal/jobs"
	"coldmart/internal/jobs/background"
	"coldmart/internal/logger"
	"coldmart/internal/middleware"
	"coldmart/internal/repositories"
	"coldmart/internal/seed"
	"coldmart/internal/services"
	"coldmart/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	db, err := database.Open()
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}

	seeder := seed.New(db, cfg.Seed.RandomSeed, log)
	if err := seeder.Run(); err != nil {
		log.Fatal("failed to seed data", zap.Error(err))
	}

	warehouseRepo := repositories.NewWarehouseRepository(db)
	zoneRepo := repositories.NewZoneRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	productRepo := repositories.NewProductRepository(db)
	lotRepo := repositories.NewLotRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	sensorRepo := repositories.NewSensorRepository(db)
	alertRepo := repositories.NewAlertRepository(db)
	inboundRepo := repositories.NewInboundOrderRepository(db)
	outboundRepo := repositories.NewOutboundOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)
	deviceRepo := repositories.NewDeviceRepository(db)

	clock := clockwork.NewRealClock()

	authService := services.NewAuthService(userRepo, cfg.JWT)
	zoneService := services.NewZoneService(zoneRepo, warehouseRepo, locationRepo)
	locationService := services.NewLocationService(locationRepo, zoneRepo, inventoryRepo)
	productService := services.NewProductService(productRepo, lotRepo)
	lotService := services.NewLotService(lotRepo, productRepo)
	inventoryService := services.NewInventoryService(db, inventoryRepo)
	orderService := services.NewOrderService(inboundRepo, outboundRepo, productRepo)
	alertService := services.NewAlertService(alertRepo)
	kpiService := services.NewKPIService(inboundRepo, outboundRepo, inventoryRepo, locationRepo, productRepo, alertRepo)
	energyService := services.NewEnergyService(clock)
	deviceService := services.NewDeviceService(deviceRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewRequestValidator()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	authHandlers := handlers.NewAuthHandlers(authService)
	warehouseHandlers := handlers.NewWarehouseHandlers(warehouseRepo)
	zoneHandlers := handlers.NewZoneHandlers(zoneService)
	locationHandlers := handlers.NewLocationHandlers(locationService)
	productHandlers := handlers.NewProductHandlers(productService)
	lotHandlers := handlers.NewLotHandlers(lotService)
	inventoryHandlers := handlers.NewInventoryHandlers(inventoryService)
	sensorHandlers := handlers.NewSensorHandlers(sensorRepo)
	alertHandlers := handlers.NewAlertHandlers(alertService)
	orderHandlers := handlers.NewOrderHandlers(orderService)
	kpiHandlers := handlers.NewKPIHandlers(kpiService)
	energyHandlers := handlers.NewEnergyHandlers(energyService)
	deviceHandlers := handlers.NewDeviceHandlers(deviceService)
	settingsHandlers := handlers.NewSettingsHandlers()
	healthHandlers := handlers.NewHealthHandlers(db)

	e.GET("/health", healthHandlers.Health)
	e.GET("/health/ready", healthHandlers.Ready)

	v1 := e.Group("/v1")
	v1.POST("/auth/login", authHandlers.Login)

	api := v1.Group("", middleware.JWT(cfg.JWT.Secret))
	api.GET("/auth/me", authHandlers.Me)

	api.GET("/warehouses", warehouseHandlers.ListWarehouses)
	api.GET("/warehouses/:id", warehouseHandlers.GetWarehouse)

	api.GET("/zones", zoneHandlers.ListZones)
	api.POST("/zones", zoneHandlers.CreateZone)
	api.GET("/zones/:id", zoneHandlers.GetZone)
	api.PUT("/zones/:id", zoneHandlers.UpdateZone)
	api.DELETE("/zones/:id", zoneHandlers.DeleteZone)

	api.GET("/locations", locationHandlers.ListLocations)
	api.POST("/locations", locationHandlers.CreateLocation)
	api.GET("/locations/:id", locationHandlers.GetLocation)
	api.PUT("/locations/:id", locationHandlers.UpdateLocation)
	api.DELETE("/locations/:id", locationHandlers.DeleteLocation)

	api.GET("/products", productHandlers.ListProducts)
	api.POST("/products", productHandlers.CreateProduct)
	api.GET("/products/:id", productHandlers.GetProduct)
	api.PUT("/products/:id", productHandlers.UpdateProduct)
	api.DELETE("/products/:id", productHandlers.DeleteProduct)

	api.GET("/lots", lotHandlers.ListLots)
	api.POST("/lots", lotHandlers.CreateLot)
	api.GET("/lots/:id", lotHandlers.GetLot)
	api.PUT("/lots/:id", lotHandlers.UpdateLot)
	api.DELETE("/lots/:id", lotHandlers.DeleteLot)

	api.GET("/inventory", inventoryHandlers.ListInventory)
	api.POST("/inventory", inventoryHandlers.CreateInventory)
	api.GET("/inventory/:id", inventoryHandlers.GetInventory)
	api.PUT("/inventory/:id", inventoryHandlers.UpdateInventory)
	api.DELETE("/inventory/:id", inventoryHandlers.DeleteInventory)

	api.GET("/sensors", sensorHandlers.ListSensors)
	api.GET("/sensors/:id", sensorHandlers.GetSensor)

	api.GET("/alerts", alertHandlers.ListAlerts)
	api.GET("/alerts/:id", alertHandlers.GetAlert)
	api.POST("/alerts/:id/resolve", alertHandlers.ResolveAlert)

	api.GET("/inbound", orderHandlers.ListInbound)
	api.POST("/inbound", orderHandlers.CreateInbound)
	api.GET("/inbound/:id", orderHandlers.GetInbound)
	api.POST("/inbound/:id/receive", orderHandlers.ReceiveInbound)
	api.POST("/inbound/:id/cancel", orderHandlers.CancelInbound)

	api.GET("/outbound", orderHandlers.ListOutbound)
	api.POST("/outbound", orderHandlers.CreateOutbound)
	api.GET("/outbound/:id", orderHandlers.GetOutbound)
	api.POST("/outbound/:id/pick", orderHandlers.PickOutbound)
	api.POST("/outbound/:id/ship", orderHandlers.ShipOutbound)
	api.POST("/outbound/:id/cancel", orderHandlers.CancelOutbound)

	api.GET("/kpis", kpiHandlers.GetKPIs)
	api.GET("/reports/finance", kpiHandlers.GetFinanceReport)
	api.GET("/energy/solar", energyHandlers.GetSolar)

	api.GET("/devices", deviceHandlers.ListDevices)
	api.POST("/devices/:id/control", deviceHandlers.ControlDevice)

	api.GET("/settings", settingsHandlers.GetSettings)
	api.PUT("/settings", settingsHandlers.UpdateSettings)

	var scheduler *background.Scheduler
	if cfg.Sim.Enabled {
		simulator := jobs.NewTelemetrySimulator(sensorRepo, zoneRepo, alertRepo, clock, log, cfg.Sim.ExcursionChance, cfg.Seed.RandomSeed)
		scheduler, err = background.NewScheduler(simulator, cfg.Sim.Interval, clock, log)
		if err != nil {
			log.Fatal("failed to create scheduler", zap.Error(err))
		}
		scheduler.Start()
		log.Info("telemetry simulator started", zap.Duration("interval", cfg.Sim.Interval))
	}

	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()
	log.Info("server started", zap.Int("port", cfg.App.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if scheduler != nil {
		if err := scheduler.Stop(); err != nil {
			log.Warn("scheduler shutdown", zap.Error(err))
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
}
