package services

import (
	"testing"

	"github.com/Dibyashritarout/ByteBites-main/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID uint = 1

func TestAddMergesQuantity(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)

	_, err := svc.Add(testUserID, f.ItemA.ID, 2)
	require.NoError(t, err)
	view, err := svc.Add(testUserID, f.ItemA.ID, 3)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.Equal(t, 50.0, view.Total)

	// ต้องเป็นแถวเดียวใน DB ด้วย ไม่ใช่สองแถว
	var count int64
	require.NoError(t, db.Model(&entity.CartItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)

	view, err := svc.Add(testUserID, f.ItemA.ID, 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
}

func TestAddUnknownMenuItem(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newCartService(db)

	_, err := svc.Add(testUserID, 9999, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestTotalRecomputedAfterPriceChange(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)

	_, err := svc.Add(testUserID, f.ItemA.ID, 2)
	require.NoError(t, err)

	// ราคาเมนูเปลี่ยน → ยอดรวมตะกร้าต้องตามราคาใหม่ทันที ไม่ใช่ค่า cache
	require.NoError(t, db.Model(&entity.MenuItem{}).
		Where("id = ?", f.ItemA.ID).Update("price", 12.5).Error)

	view, err := svc.Get(testUserID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, view.Total)
	assert.Equal(t, 12.5, view.Items[0].Price)
}

func TestUpdateQtySetsNotAdds(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)

	_, err := svc.Add(testUserID, f.ItemA.ID, 2)
	require.NoError(t, err)

	view, err := svc.UpdateQty(testUserID, f.ItemA.ID, 7)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 7, view.Items[0].Quantity)
	assert.Equal(t, 70.0, view.Total)
}

func TestUpdateQtyMissingItem(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)

	_, err := svc.Add(testUserID, f.ItemA.ID, 2)
	require.NoError(t, err)

	_, err = svc.UpdateQty(testUserID, f.ItemB.ID, 3)
	assert.ErrorIs(t, err, ErrItemNotFound)

	// ตะกร้าต้องไม่ขยับ
	view, err := svc.Get(testUserID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
}

func TestUpdateQtyNonPositiveRemovesLine(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)

	_, err := svc.Add(testUserID, f.ItemA.ID, 2)
	require.NoError(t, err)

	view, err := svc.UpdateQty(testUserID, f.ItemA.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Total)

	// ลบแล้วต้อง add เมนูเดิมกลับได้ (unique index ต้องไม่ค้าง)
	view, err = svc.Add(testUserID, f.ItemA.ID, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)

	_, err := svc.Add(testUserID, f.ItemA.ID, 2)
	require.NoError(t, err)

	view, err := svc.Remove(testUserID, f.ItemB.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 20.0, view.Total)

	// user ที่ไม่เคยมีตะกร้าก็ remove ได้เฉย ๆ
	view, err = svc.Remove(42, f.ItemA.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestClearIdempotent(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)

	_, err := svc.Add(testUserID, f.ItemA.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(testUserID))
	require.NoError(t, svc.Clear(testUserID)) // ซ้ำได้

	view, err := svc.Get(testUserID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Total)
}

func TestCartsAreScopedPerUser(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)

	_, err := svc.Add(1, f.ItemA.ID, 1)
	require.NoError(t, err)
	_, err = svc.Add(2, f.ItemB.ID, 3)
	require.NoError(t, err)

	v1, err := svc.Get(1)
	require.NoError(t, err)
	v2, err := svc.Get(2)
	require.NoError(t, err)

	assert.Equal(t, 10.0, v1.Total)
	assert.Equal(t, 15.0, v2.Total)
}
