// Package seed populates the in-memory database with a plausible demo
// dataset. It runs exactly once at boot, before the router and simulator
// start, and is driven by a seeded PRNG so fixtures are reproducible.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coldmart/internal/models"
)

// Weighted location status distribution: 15% empty, 45% occupied, 25% full,
// 10% reserved, 5% blocked.
var statusWeights = []struct {
	status models.LocationStatus
	weight int
}{
	{models.LocationEmpty, 15},
	{models.LocationOccupied, 45},
	{models.LocationFull, 25},
	{models.LocationReserved, 10},
	{models.LocationBlocked, 5},
}

type zoneSpec struct {
	name     string
	code     string
	min, max float64
	target   float64
	rows     int
	class    models.TempClass
}

type productSpec struct {
	sku       string
	name      string
	class     models.TempClass
	shelfDays int
	price     float64
}

var productSpecs = []productSpec{
	{"FRZ-1001", "Frozen Shrimp 1kg", models.TempClassFrozen, 365, 18.50},
	{"FRZ-1002", "Frozen Berries 500g", models.TempClassFrozen, 540, 6.20},
	{"FRZ-1003", "Ice Cream Tubs 5L", models.TempClassFrozen, 270, 12.80},
	{"FRZ-1004", "Frozen Dumplings 1kg", models.TempClassFrozen, 365, 9.40},
	{"CHL-2001", "Fresh Milk 1L", models.TempClassChilled, 14, 1.45},
	{"CHL-2002", "Greek Yogurt 500g", models.TempClassChilled, 28, 3.10},
	{"CHL-2003", "Cheddar Blocks 2kg", models.TempClassChilled, 90, 16.00},
	{"CHL-2004", "Smoked Salmon 200g", models.TempClassChilled, 21, 7.90},
	{"AMB-3001", "Canned Tomatoes 400g", models.TempClassAmbient, 720, 0.95},
	{"AMB-3002", "Pasta 1kg", models.TempClassAmbient, 900, 1.60},
	{"AMB-3003", "Olive Oil 1L", models.TempClassAmbient, 540, 8.20},
	{"AMB-3004", "Rice Sacks 5kg", models.TempClassAmbient, 900, 6.70},
}

// Seeder builds the demo dataset.
type Seeder struct {
	db     *gorm.DB
	rng    *rand.Rand
	logger *zap.Logger

	zoneClass map[uuid.UUID]models.TempClass
	products  map[models.TempClass][]*models.Product
	lots      map[models.TempClass][]*models.Lot
	assigned  map[uuid.UUID]int // lot id -> qty placed into locations
}

func New(db *gorm.DB, randomSeed int64, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:        db,
		rng:       rand.New(rand.NewSource(randomSeed)),
		logger:    logger,
		zoneClass: make(map[uuid.UUID]models.TempClass),
		products:  make(map[models.TempClass][]*models.Product),
		lots:      make(map[models.TempClass][]*models.Lot),
		assigned:  make(map[uuid.UUID]int),
	}
}

// Run populates every collection. Must be called on an empty database.
func (s *Seeder) Run() error {
	warehouses, err := s.seedWarehouses()
	if err != nil {
		return err
	}
	zones, err := s.seedZones(warehouses)
	if err != nil {
		return err
	}
	if err := s.seedProducts(); err != nil {
		return err
	}
	locations, err := s.seedLocations(zones)
	if err != nil {
		return err
	}
	if err := s.seedInventory(locations); err != nil {
		return err
	}
	if err := s.finalizeLots(); err != nil {
		return err
	}
	if err := s.updateUsage(warehouses, zones, locations); err != nil {
		return err
	}
	if err := s.seedSensors(zones); err != nil {
		return err
	}
	if err := s.seedUsers(); err != nil {
		return err
	}
	if err := s.seedDevices(zones); err != nil {
		return err
	}
	if err := s.seedOrders(); err != nil {
		return err
	}
	s.logger.Info("seed complete",
		zap.Int("warehouses", len(warehouses)),
		zap.Int("zones", len(zones)),
		zap.Int("locations", len(locations)))
	return nil
}

func (s *Seeder) seedWarehouses() ([]*models.Warehouse, error) {
	addr1 := "14 Frostvale Industrial Park"
	addr2 := "2 Harbour Cold Terminal"
	warehouses := []*models.Warehouse{
		{ID: uuid.New(), Name: "Frostvale DC", Code: "WH-01", Address: &addr1},
		{ID: uuid.New(), Name: "Harbour Cold Store", Code: "WH-02", Address: &addr2},
	}
	for _, w := range warehouses {
		if err := s.db.Create(w).Error; err != nil {
			return nil, fmt.Errorf("seed warehouse %s: %w", w.Code, err)
		}
	}
	return warehouses, nil
}

func (s *Seeder) seedZones(warehouses []*models.Warehouse) ([]*models.Zone, error) {
	specs := []zoneSpec{
		{"Deep Freeze A", "Z-F1", -25, -18, -21, 40, models.TempClassFrozen},
		{"Deep Freeze B", "Z-F2", -25, -18, -20, 30, models.TempClassFrozen},
		{"Chill Room A", "Z-C1", 2, 8, 4, 40, models.TempClassChilled},
		{"Chill Room B", "Z-C2", 2, 8, 5, 30, models.TempClassChilled},
		{"Dry Storage A", "Z-A1", 10, 25, 18, 20, models.TempClassAmbient},
		{"Dry Storage B", "Z-A2", 10, 25, 18, 20, models.TempClassAmbient},
	}
	zones := make([]*models.Zone, 0, len(specs))
	for i, spec := range specs {
		zone := &models.Zone{
			ID:          uuid.New(),
			WarehouseID: warehouses[i%len(warehouses)].ID,
			Name:        spec.name,
			Code:        spec.code,
			TempMin:     spec.min,
			TempMax:     spec.max,
			TempTarget:  spec.target,
		}
		if err := s.db.Create(zone).Error; err != nil {
			return nil, fmt.Errorf("seed zone %s: %w", spec.code, err)
		}
		s.zoneClass[zone.ID] = spec.class
		zones = append(zones, zone)
	}
	// Stash row counts for location seeding.
	for i, spec := range specs {
		zones[i].CapacityPallets = spec.rows
	}
	return zones, nil
}

func (s *Seeder) seedProducts() error {
	for _, spec := range productSpecs {
		product := &models.Product{
			ID:            uuid.New(),
			SKU:           spec.sku,
			Name:          spec.name,
			TempClass:     spec.class,
			ShelfLifeDays: spec.shelfDays,
			UnitPrice:     spec.price,
		}
		if err := s.db.Create(product).Error; err != nil {
			return fmt.Errorf("seed product %s: %w", spec.sku, err)
		}
		s.products[spec.class] = append(s.products[spec.class], product)
	}

	// One or two lots per product. Totals are finalized after inventory
	// assignment so availability always adds up.
	lotSeq := 0
	for _, class := range []models.TempClass{models.TempClassFrozen, models.TempClassChilled, models.TempClassAmbient} {
		for _, product := range s.products[class] {
			n := 1 + s.rng.Intn(2)
			for j := 0; j < n; j++ {
				lotSeq++
				lot := &models.Lot{
					ID:        uuid.New(),
					ProductID: product.ID,
					LotNo:     fmt.Sprintf("LOT-%04d", lotSeq),
					ExpDate:   time.Now().AddDate(0, 0, product.ShelfLifeDays-s.rng.Intn(product.ShelfLifeDays/2+1)),
					Status:    models.LotActive,
				}
				s.lots[class] = append(s.lots[class], lot)
			}
		}
	}
	return nil
}

func (s *Seeder) pickStatus() models.LocationStatus {
	total := 0
	for _, w := range statusWeights {
		total += w.weight
	}
	roll := s.rng.Intn(total)
	for _, w := range statusWeights {
		if roll < w.weight {
			return w.status
		}
		roll -= w.weight
	}
	return models.LocationOccupied
}

func (s *Seeder) seedLocations(zones []*models.Zone) ([]*models.Location, error) {
	var locations []*models.Location
	for _, zone := range zones {
		for row := 1; row <= zone.CapacityPallets; row++ {
			maxQty := 500 + 100*s.rng.Intn(6) // 500..1000
			status := s.pickStatus()

			var currentQty int
			switch status {
			case models.LocationEmpty:
				currentQty = 0
			case models.LocationFull:
				currentQty = maxQty
			default:
				// Partial fill between 10% and 90%.
				currentQty = maxQty * (10 + s.rng.Intn(81)) / 100
				if currentQty == 0 {
					currentQty = 1
				}
			}

			location := &models.Location{
				ID:         uuid.New(),
				ZoneID:     zone.ID,
				Code:       fmt.Sprintf("%s-%03d", zone.Code, row),
				MaxQty:     maxQty,
				CurrentQty: currentQty,
				Status:     status,
			}
			if err := s.db.Create(location).Error; err != nil {
				return nil, fmt.Errorf("seed location %s: %w", location.Code, err)
			}
			locations = append(locations, location)
		}
	}
	return locations, nil
}

// seedInventory creates one inventory row per stocked location, drawn from a
// lot whose product matches the zone's temperature class, so location
// quantities and lot assignments agree.
func (s *Seeder) seedInventory(locations []*models.Location) error {
	for _, location := range locations {
		if location.CurrentQty == 0 {
			continue
		}
		class := s.zoneClass[location.ZoneID]
		lots := s.lots[class]
		if len(lots) == 0 {
			continue
		}
		lot := lots[s.rng.Intn(len(lots))]

		inventory := &models.Inventory{
			ID:         uuid.New(),
			LotID:      lot.ID,
			LocationID: location.ID,
			Qty:        location.CurrentQty,
		}
		if err := s.db.Create(inventory).Error; err != nil {
			return fmt.Errorf("seed inventory for %s: %w", location.Code, err)
		}
		s.assigned[lot.ID] += location.CurrentQty
	}
	return nil
}

// finalizeLots writes lots with totals covering what was placed plus some
// unallocated remainder.
func (s *Seeder) finalizeLots() error {
	for _, lots := range s.lots {
		for _, lot := range lots {
			placed := s.assigned[lot.ID]
			spare := 100 * s.rng.Intn(6) // 0..500 unallocated
			lot.TotalQty = placed + spare
			lot.AvailableQty = spare
			if lot.TotalQty == 0 {
				lot.TotalQty = 200
				lot.AvailableQty = 200
			}
			if err := s.db.Create(lot).Error; err != nil {
				return fmt.Errorf("seed lot %s: %w", lot.LotNo, err)
			}
		}
	}
	return nil
}

// updateUsage derives pallet usage figures from location fill state.
func (s *Seeder) updateUsage(warehouses []*models.Warehouse, zones []*models.Zone, locations []*models.Location) error {
	zoneUsed := make(map[uuid.UUID]int)
	zoneTotal := make(map[uuid.UUID]int)
	for _, location := range locations {
		zoneTotal[location.ZoneID]++
		if location.CurrentQty > 0 {
			zoneUsed[location.ZoneID]++
		}
	}

	warehouseUsed := make(map[uuid.UUID]int)
	warehouseTotal := make(map[uuid.UUID]int)
	for _, zone := range zones {
		zone.UsedPallets = zoneUsed[zone.ID]
		zone.CapacityPallets = zoneTotal[zone.ID]
		if err := s.db.Save(zone).Error; err != nil {
			return err
		}
		warehouseUsed[zone.WarehouseID] += zone.UsedPallets
		warehouseTotal[zone.WarehouseID] += zone.CapacityPallets
	}
	for _, warehouse := range warehouses {
		warehouse.UsedPallets = warehouseUsed[warehouse.ID]
		warehouse.CapacityPallets = warehouseTotal[warehouse.ID]
		if err := s.db.Save(warehouse).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedSensors(zones []*models.Zone) error {
	for _, zone := range zones {
		sensors := []*models.Sensor{
			{
				ID:           uuid.New(),
				ZoneID:       zone.ID,
				Name:         zone.Code + "-TEMP-1",
				Type:         models.SensorTemperature,
				CurrentValue: zone.TempTarget + (s.rng.Float64()*2 - 1),
				Unit:         "°C",
				Status:       models.SensorOnline,
				LastUpdated:  time.Now(),
			},
			{
				ID:           uuid.New(),
				ZoneID:       zone.ID,
				Name:         zone.Code + "-TEMP-2",
				Type:         models.SensorTemperature,
				CurrentValue: zone.TempTarget + (s.rng.Float64()*2 - 1),
				Unit:         "°C",
				Status:       models.SensorOnline,
				LastUpdated:  time.Now(),
			},
			{
				ID:           uuid.New(),
				ZoneID:       zone.ID,
				Name:         zone.Code + "-HUM-1",
				Type:         models.SensorHumidity,
				CurrentValue: 55 + s.rng.Float64()*20,
				Unit:         "%",
				Status:       models.SensorOnline,
				LastUpdated:  time.Now(),
			},
		}
		for _, sensor := range sensors {
			if err := s.db.Create(sensor).Error; err != nil {
				return fmt.Errorf("seed sensor %s: %w", sensor.Name, err)
			}
		}
	}
	return nil
}

func (s *Seeder) seedUsers() error {
	users := []struct {
		email, name, password string
		role                  models.UserRole
	}{
		{"admin@coldmart.io", "Ava Winter", "admin123", models.RoleAdmin},
		{"ops@coldmart.io", "Oscar Frost", "ops12345", models.RoleOperator},
		{"viewer@coldmart.io", "Vera North", "view1234", models.RoleViewer},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.email, err)
		}
		user := &models.User{
			ID:           uuid.New(),
			Email:        u.email,
			Name:         u.name,
			Role:         u.role,
			PasswordHash: string(hash),
		}
		if err := s.db.Create(user).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}
	return nil
}

func (s *Seeder) seedDevices(zones []*models.Zone) error {
	kinds := []struct {
		suffix string
		kind   models.DeviceKind
		state  string
	}{
		{"COMP", models.DeviceCompressor, "RUNNING"},
		{"DOOR", models.DeviceDoor, "CLOSED"},
	}
	for _, zone := range zones {
		if s.zoneClass[zone.ID] == models.TempClassAmbient {
			continue
		}
		for _, k := range kinds {
			zoneID := zone.ID
			device := &models.Device{
				ID:     uuid.New(),
				ZoneID: &zoneID,
				Name:   zone.Code + "-" + k.suffix,
				Kind:   k.kind,
				State:  k.state,
			}
			if err := s.db.Create(device).Error; err != nil {
				return fmt.Errorf("seed device %s: %w", device.Name, err)
			}
		}
	}
	return nil
}

func (s *Seeder) seedOrders() error {
	products := append(append([]*models.Product{}, s.products[models.TempClassFrozen]...), s.products[models.TempClassChilled]...)
	if len(products) < 2 {
		return nil
	}

	eta := time.Now().Add(36 * time.Hour)
	inbound := []*models.InboundOrder{
		{
			ID: uuid.New(), OrderNo: "IN-SEED001", SupplierName: "Polar Foods Ltd",
			Status: models.InboundPending, ETA: &eta,
		},
		{
			ID: uuid.New(), OrderNo: "IN-SEED002", SupplierName: "Glacier Dairy Co",
			Status: models.InboundReceiving,
		},
	}
	for i, order := range inbound {
		qty1 := 100 + 50*s.rng.Intn(5)
		qty2 := 100 + 50*s.rng.Intn(5)
		order.Lines = []models.InboundLine{
			{ID: uuid.New(), OrderID: order.ID, ProductID: products[i].ID, LotNo: fmt.Sprintf("LOT-IN%d1", i), ExpectedQty: qty1},
			{ID: uuid.New(), OrderID: order.ID, ProductID: products[i+1].ID, LotNo: fmt.Sprintf("LOT-IN%d2", i), ExpectedQty: qty2},
		}
		order.TotalQty = qty1 + qty2
		if order.Status == models.InboundReceiving {
			order.Lines[0].ReceivedQty = qty1
			order.ReceivedQty = qty1
		}
		if err := s.db.Create(order).Error; err != nil {
			return fmt.Errorf("seed inbound %s: %w", order.OrderNo, err)
		}
	}

	shipBy := time.Now().Add(24 * time.Hour)
	outbound := []*models.OutboundOrder{
		{
			ID: uuid.New(), OrderNo: "OUT-SEED001", CustomerName: "Northside Grocers",
			Status: models.OutboundPending, ShipBy: &shipBy,
		},
		{
			ID: uuid.New(), OrderNo: "OUT-SEED002", CustomerName: "Bistro Verde",
			Status: models.OutboundPicking,
		},
	}
	for i, order := range outbound {
		qty := 80 + 40*s.rng.Intn(4)
		order.Lines = []models.OutboundLine{
			{ID: uuid.New(), OrderID: order.ID, ProductID: products[i].ID, OrderedQty: qty},
		}
		order.TotalQty = qty
		if order.Status == models.OutboundPicking {
			order.Lines[0].PickedQty = qty / 2
			order.PickedQty = qty / 2
		}
		if err := s.db.Create(order).Error; err != nil {
			return fmt.Errorf("seed outbound %s: %w", order.OrderNo, err)
		}
	}
	return nil
}
