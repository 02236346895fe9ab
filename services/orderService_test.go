package services

import (
	"errors"
	"testing"

	"bhinnashad-api/apperrors"
	"bhinnashad-api/dtos"
	"bhinnashad-api/models"
	"bhinnashad-api/utils"
)

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedTable(t, db, 1)
	biryani := seedMenuItem(t, db, "Chicken Biryani", 150, true)

	order, err := orders.Create(1, models.RoleWaiter, dtos.CreateOrderInput{
		OrderType:   models.OrderTypeDineIn,
		TableNumber: utils.PtrInt(1),
		Items:       []dtos.OrderLineInput{{MenuItemID: biryani.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.Items[0].Price != 150 {
		t.Fatalf("expected snapshot price 150, got %v", order.Items[0].Price)
	}

	// A later menu price change must not touch the captured line price.
	if err := db.Model(&models.MenuItem{}).Where("id = ?", biryani.ID).Update("price", 999).Error; err != nil {
		t.Fatalf("failed to reprice menu item: %v", err)
	}
	reloaded, err := orders.Get(order.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if reloaded.Items[0].Price != 150 {
		t.Fatalf("snapshot price drifted after menu edit: got %v", reloaded.Items[0].Price)
	}
	if got := reloaded.Subtotal(); got != 300 {
		t.Fatalf("expected subtotal 300, got %v", got)
	}
}

func TestCreateOrderStatusByRole(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedTable(t, db, 1)
	item := seedMenuItem(t, db, "Paneer Tikka", 120, true)

	tests := []struct {
		role string
		want string
	}{
		{models.RoleWaiter, models.OrderStatusPending},
		{models.RoleManager, models.OrderStatusApproved},
		{models.RoleAdmin, models.OrderStatusApproved},
	}
	for _, tc := range tests {
		order, err := orders.Create(1, tc.role, dtos.CreateOrderInput{
			OrderType:   models.OrderTypeDineIn,
			TableNumber: utils.PtrInt(1),
			Items:       []dtos.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("Create as %s returned error: %v", tc.role, err)
		}
		if order.Status != tc.want {
			t.Errorf("Create as %s: expected status %s, got %s", tc.role, tc.want, order.Status)
		}
	}
}

func TestCreateDineInRequiresTable(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	item := seedMenuItem(t, db, "Dal Makhani", 90, true)

	_, err := orders.Create(1, models.RoleWaiter, dtos.CreateOrderInput{
		OrderType: models.OrderTypeDineIn,
		Items:     []dtos.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}},
	})
	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateOrderUnknownMenuItemAbortsWholeOrder(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedTable(t, db, 1)
	item := seedMenuItem(t, db, "Naan", 30, true)

	_, err := orders.Create(1, models.RoleWaiter, dtos.CreateOrderInput{
		OrderType:   models.OrderTypeDineIn,
		TableNumber: utils.PtrInt(1),
		Items: []dtos.OrderLineInput{
			{MenuItemID: item.ID, Quantity: 1},
			{MenuItemID: 9999, Quantity: 1},
		},
	})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no order persisted, found %d", count)
	}
	if table := tableStatus(t, db, 1); table.Status != models.TableStatusAvailable {
		t.Fatalf("table must stay available after a failed create, got %s", table.Status)
	}
}

func TestCreateOrderUnavailableItemNamesOffender(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedTable(t, db, 1)
	item := seedMenuItem(t, db, "Seasonal Special", 200, false)

	_, err := orders.Create(1, models.RoleWaiter, dtos.CreateOrderInput{
		OrderType:   models.OrderTypeDineIn,
		TableNumber: utils.PtrInt(1),
		Items:       []dtos.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}},
	})
	if !errors.Is(err, apperrors.ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if got := err.Error(); got != "Seasonal Special: menu item is currently unavailable" {
		t.Fatalf("error should name the item, got %q", got)
	}
}

func TestCreateDineInOccupiesTable(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedTable(t, db, 3)
	item := seedMenuItem(t, db, "Masala Chai", 20, true)

	if _, err := orders.Create(7, models.RoleWaiter, dtos.CreateOrderInput{
		OrderType:   models.OrderTypeDineIn,
		TableNumber: utils.PtrInt(3),
		Items:       []dtos.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	table := tableStatus(t, db, 3)
	if table.Status != models.TableStatusOccupied {
		t.Fatalf("expected table occupied, got %s", table.Status)
	}
	if table.WaiterID == nil || *table.WaiterID != 7 {
		t.Fatalf("expected table assigned to waiter 7, got %v", table.WaiterID)
	}
}

func TestCreatePickupIgnoresTableNumber(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedTable(t, db, 1)
	item := seedMenuItem(t, db, "Samosa", 25, true)

	order, err := orders.Create(1, models.RoleWaiter, dtos.CreateOrderInput{
		OrderType:   models.OrderTypePickup,
		TableNumber: utils.PtrInt(1),
		Items:       []dtos.OrderLineInput{{MenuItemID: item.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.TableNumber != nil {
		t.Fatalf("pickup order must not carry a table number, got %v", *order.TableNumber)
	}
	if table := tableStatus(t, db, 1); table.Status != models.TableStatusAvailable {
		t.Fatalf("pickup order must not occupy a table, got %s", table.Status)
	}
}

func TestUpdateStatusTransitionMatrix(t *testing.T) {
	all := []string{
		models.OrderStatusPending, models.OrderStatusApproved, models.OrderStatusPrepared,
		models.OrderStatusServed, models.OrderStatusCancelled, models.OrderStatusBilled,
	}
	allowed := map[string][]string{
		models.OrderStatusPending:  {models.OrderStatusApproved, models.OrderStatusCancelled},
		models.OrderStatusApproved: {models.OrderStatusPrepared, models.OrderStatusCancelled},
		models.OrderStatusPrepared: {models.OrderStatusServed, models.OrderStatusCancelled},
		models.OrderStatusServed:   {models.OrderStatusBilled},
	}
	isAllowed := func(from, to string) bool {
		for _, next := range allowed[from] {
			if next == to {
				return true
			}
		}
		return false
	}

	db := newTestDB(t)
	orders, _, _ := newTestServices(db)
	seedTable(t, db, 1)

	for _, from := range all {
		for _, to := range all {
			if from == to {
				continue
			}
			order := seedOrder(t, db, utils.PtrInt(1), models.OrderTypeDineIn, from, 1,
				models.OrderItem{MenuItemID: 1, Quantity: 1, Price: 10})

			_, err := orders.UpdateStatus(order.ID, to, models.RoleWaiter)
			if isAllowed(from, to) {
				if err != nil {
					t.Errorf("%s -> %s should succeed, got %v", from, to, err)
				}
				continue
			}

			var tErr *apperrors.InvalidTransitionError
			if !errors.As(err, &tErr) {
				t.Errorf("%s -> %s should be rejected, got %v", from, to, err)
				continue
			}
			if tErr.From != from || tErr.To != to {
				t.Errorf("rejection should report %s -> %s, got %s -> %s", from, to, tErr.From, tErr.To)
			}
		}
	}
}

func TestPickupPreparedByManagerSettlesOnTheSpot(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedStockItem(t, db, "Rice", 20, 40)
	order := seedOrder(t, db, nil, models.OrderTypePickup, models.OrderStatusApproved, 2,
		models.OrderItem{MenuItemID: 1, Quantity: 2, Price: 150})

	result, err := orders.UpdateStatus(order.ID, models.OrderStatusPrepared, models.RoleManager)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if result.Settlement == nil {
		t.Fatal("expected a settlement for the manager pickup path")
	}

	bill := result.Settlement.Bill
	if bill.Status != models.BillStatusPaid {
		t.Fatalf("expected bill paid, got %s", bill.Status)
	}
	if bill.TableNumber != nil {
		t.Fatalf("pickup bill must have no table, got %v", *bill.TableNumber)
	}
	if bill.Total != 300 {
		t.Fatalf("expected bill total 300, got %v", bill.Total)
	}
	if len(bill.OrderIDs) != 1 || bill.OrderIDs[0] != order.ID {
		t.Fatalf("expected bill to cover order %d, got %v", order.ID, bill.OrderIDs)
	}

	reloaded, _ := orders.Get(order.ID)
	if reloaded.Status != models.OrderStatusBilled {
		t.Fatalf("expected order billed, got %s", reloaded.Status)
	}
}

func TestPickupPreparedByWaiterStaysPrepared(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	order := seedOrder(t, db, nil, models.OrderTypePickup, models.OrderStatusApproved, 2,
		models.OrderItem{MenuItemID: 1, Quantity: 1, Price: 100})

	result, err := orders.UpdateStatus(order.ID, models.OrderStatusPrepared, models.RoleWaiter)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if result.Settlement != nil {
		t.Fatal("waiter must not trigger the pickup settlement cascade")
	}
	if result.Order.Status != models.OrderStatusPrepared {
		t.Fatalf("expected prepared, got %s", result.Order.Status)
	}

	var bills int64
	db.Model(&models.Bill{}).Count(&bills)
	if bills != 0 {
		t.Fatalf("expected no bills, found %d", bills)
	}
}

func TestDineInPreparedByManagerStopsAtPrepared(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedTable(t, db, 1)
	order := seedOrder(t, db, utils.PtrInt(1), models.OrderTypeDineIn, models.OrderStatusApproved, 2,
		models.OrderItem{MenuItemID: 1, Quantity: 1, Price: 100})

	result, err := orders.UpdateStatus(order.ID, models.OrderStatusPrepared, models.RoleManager)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if result.Settlement != nil {
		t.Fatal("the settlement cascade is pickup-only")
	}
	if result.Order.Status != models.OrderStatusPrepared {
		t.Fatalf("expected prepared, got %s", result.Order.Status)
	}
}

func TestServeReleasesTableOnlyWhenNothingBlocks(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedTable(t, db, 5)
	if err := db.Model(&models.Table{}).Where("table_number = ?", 5).
		Update("status", models.TableStatusOccupied).Error; err != nil {
		t.Fatalf("failed to occupy table: %v", err)
	}

	first := seedOrder(t, db, utils.PtrInt(5), models.OrderTypeDineIn, models.OrderStatusPrepared, 1,
		models.OrderItem{MenuItemID: 1, Quantity: 1, Price: 50})
	second := seedOrder(t, db, utils.PtrInt(5), models.OrderTypeDineIn, models.OrderStatusPrepared, 1,
		models.OrderItem{MenuItemID: 1, Quantity: 1, Price: 50})

	if _, err := orders.UpdateStatus(first.ID, models.OrderStatusServed, models.RoleWaiter); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if table := tableStatus(t, db, 5); table.Status != models.TableStatusOccupied {
		t.Fatalf("table must stay occupied while an order is still prepared, got %s", table.Status)
	}

	// Serving the last blocking order frees the table even though both orders
	// are still unbilled.
	if _, err := orders.UpdateStatus(second.ID, models.OrderStatusServed, models.RoleWaiter); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if table := tableStatus(t, db, 5); table.Status != models.TableStatusAvailable {
		t.Fatalf("expected table released, got %s", table.Status)
	}
}

func TestCancelAllowedFromAnyStatus(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedTable(t, db, 1)
	for _, from := range []string{
		models.OrderStatusPending, models.OrderStatusApproved, models.OrderStatusPrepared,
		models.OrderStatusServed, models.OrderStatusBilled,
	} {
		order := seedOrder(t, db, utils.PtrInt(1), models.OrderTypeDineIn, from, 1,
			models.OrderItem{MenuItemID: 1, Quantity: 1, Price: 10})

		cancelled, err := orders.Cancel(order.ID, "guest walked out")
		if err != nil {
			t.Fatalf("Cancel from %s returned error: %v", from, err)
		}
		if cancelled.Status != models.OrderStatusCancelled {
			t.Errorf("Cancel from %s: expected cancelled, got %s", from, cancelled.Status)
		}
		if cancelled.CancellationReason == nil || *cancelled.CancellationReason != "guest walked out" {
			t.Errorf("Cancel from %s: reason not recorded", from)
		}
	}
}

func TestCancelLastOrderReleasesTable(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedTable(t, db, 2)
	item := seedMenuItem(t, db, "Lassi", 40, true)

	order, err := orders.Create(1, models.RoleWaiter, dtos.CreateOrderInput{
		OrderType:   models.OrderTypeDineIn,
		TableNumber: utils.PtrInt(2),
		Items:       []dtos.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := orders.Cancel(order.ID, "wrong table"); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if table := tableStatus(t, db, 2); table.Status != models.TableStatusAvailable {
		t.Fatalf("expected table released after cancel, got %s", table.Status)
	}
}

func TestDeleteRemovesOrderAndFreesTable(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedTable(t, db, 4)
	item := seedMenuItem(t, db, "Kulfi", 60, true)

	order, err := orders.Create(1, models.RoleWaiter, dtos.CreateOrderInput{
		OrderType:   models.OrderTypeDineIn,
		TableNumber: utils.PtrInt(4),
		Items:       []dtos.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := orders.Delete(order.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := orders.Get(order.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected order gone, got %v", err)
	}

	var lines int64
	db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&lines)
	if lines != 0 {
		t.Fatalf("expected order lines removed, found %d", lines)
	}
	if table := tableStatus(t, db, 4); table.Status != models.TableStatusAvailable {
		t.Fatalf("expected table released after delete, got %s", table.Status)
	}
}

func TestUpdateItemsOnlyWhileEditable(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedTable(t, db, 1)
	old := seedMenuItem(t, db, "Old Dish", 50, true)
	replacement := seedMenuItem(t, db, "New Dish", 80, true)

	served := seedOrder(t, db, utils.PtrInt(1), models.OrderTypeDineIn, models.OrderStatusServed, 1,
		models.OrderItem{MenuItemID: old.ID, Quantity: 1, Price: 50})
	_, err := orders.UpdateItems(served.ID, dtos.UpdateOrderItemsInput{
		Items: []dtos.OrderLineInput{{MenuItemID: replacement.ID, Quantity: 1}},
	})
	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("editing a served order should fail validation, got %v", err)
	}

	pending := seedOrder(t, db, utils.PtrInt(1), models.OrderTypeDineIn, models.OrderStatusPending, 1,
		models.OrderItem{MenuItemID: old.ID, Quantity: 1, Price: 50})
	updated, err := orders.UpdateItems(pending.ID, dtos.UpdateOrderItemsInput{
		Items: []dtos.OrderLineInput{{MenuItemID: replacement.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("UpdateItems returned error: %v", err)
	}
	if len(updated.Items) != 1 || updated.Items[0].MenuItemID != replacement.ID {
		t.Fatalf("expected lines replaced, got %+v", updated.Items)
	}
	if updated.Items[0].Price != 80 || updated.Subtotal() != 240 {
		t.Fatalf("expected fresh snapshot 80 x 3 = 240, got %v", updated.Subtotal())
	}
}

func TestListFiltersByWaiter(t *testing.T) {
	db := newTestDB(t)
	orders, _, _ := newTestServices(db)

	seedOrder(t, db, nil, models.OrderTypePickup, models.OrderStatusPending, 1)
	seedOrder(t, db, nil, models.OrderTypePickup, models.OrderStatusPending, 2)
	seedOrder(t, db, nil, models.OrderTypePickup, models.OrderStatusServed, 2)

	mine, err := orders.List(dtos.OrderFilter{WaiterID: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 orders for waiter 2, got %d", len(mine))
	}

	servedMine, err := orders.List(dtos.OrderFilter{WaiterID: 2, Status: models.OrderStatusServed})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(servedMine) != 1 {
		t.Fatalf("expected 1 served order for waiter 2, got %d", len(servedMine))
	}
}
