package shipment_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	sh, err := shipment.NewShipment(7, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, sh.AssignID(42))
	return sh
}

func TestNewShipment(t *testing.T) {
	t.Run("should create open shipment without id, number or lines", func(t *testing.T) {
		createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

		sh, err := shipment.NewShipment(7, createdAt)

		require.NoError(t, err)
		assert.Equal(t, uint64(0), sh.ID())
		assert.Equal(t, shipment.Open, sh.Status())
		assert.Nil(t, sh.Number())
		assert.Equal(t, uint64(7), sh.CreatedBy())
		assert.Equal(t, createdAt, sh.CreatedAt())
		assert.Empty(t, sh.Lines())
		require.NoError(t, sh.Validate())
	})

	t.Run("should require acting user", func(t *testing.T) {
		_, err := shipment.NewShipment(0, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require creation timestamp", func(t *testing.T) {
		_, err := shipment.NewShipment(7, time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero value shipment on Validate", func(t *testing.T) {
		var sh shipment.Shipment

		err := sh.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_AssignID(t *testing.T) {
	t.Run("should assign id once", func(t *testing.T) {
		sh, err := shipment.NewShipment(7, time.Now())
		require.NoError(t, err)

		require.NoError(t, sh.AssignID(42))
		assert.Equal(t, uint64(42), sh.ID())
	})

	t.Run("should reject second assignment", func(t *testing.T) {
		sh := mustShipment(t)

		err := sh.AssignID(43)

		require.ErrorIs(t, err, shipment.ErrIDAlreadyAssigned)
		assert.Equal(t, uint64(42), sh.ID())
	})

	t.Run("should reject zero id", func(t *testing.T) {
		sh, err := shipment.NewShipment(7, time.Now())
		require.NoError(t, err)

		require.ErrorIs(t, sh.AssignID(0), errs.ErrValueIsRequired)
	})
}

func TestShipment_AddPackage(t *testing.T) {
	t.Run("should link packages under sequential line numbers", func(t *testing.T) {
		sh := mustShipment(t)

		line1, err := sh.AddPackage(101)
		require.NoError(t, err)
		line2, err := sh.AddPackage(102)
		require.NoError(t, err)

		assert.Equal(t, 1, line1.LineNo())
		assert.Equal(t, uint64(101), line1.PackageID())
		assert.Equal(t, 2, line2.LineNo())
		assert.Equal(t, []uint64{101, 102}, sh.PackageIDs())
	})

	t.Run("should reject a package that is already linked", func(t *testing.T) {
		sh := mustShipment(t)
		_, err := sh.AddPackage(101)
		require.NoError(t, err)

		_, err = sh.AddPackage(101)

		require.ErrorIs(t, err, shipment.ErrPackageAlreadyLinked)
		assert.Len(t, sh.Lines(), 1)
	})

	t.Run("should reject additions on a shipped shipment", func(t *testing.T) {
		sh := mustShipment(t)
		_, err := sh.Ship(time.Now().UTC())
		require.NoError(t, err)

		_, err = sh.AddPackage(101)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestShipment_RemovePackage(t *testing.T) {
	t.Run("should unlink a package without renumbering the rest", func(t *testing.T) {
		sh := mustShipment(t)
		_, err := sh.AddPackage(101)
		require.NoError(t, err)
		_, err = sh.AddPackage(102)
		require.NoError(t, err)
		_, err = sh.AddPackage(103)
		require.NoError(t, err)

		require.NoError(t, sh.RemovePackage(102))

		lines := sh.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, 1, lines[0].LineNo())
		assert.Equal(t, uint64(101), lines[0].PackageID())
		assert.Equal(t, 3, lines[1].LineNo())
		assert.Equal(t, uint64(103), lines[1].PackageID())
	})

	t.Run("should fail when the package is not linked", func(t *testing.T) {
		sh := mustShipment(t)

		err := sh.RemovePackage(999)

		require.ErrorIs(t, err, shipment.ErrPackageNotLinked)
	})

	t.Run("should reject removals on a shipped shipment", func(t *testing.T) {
		sh := mustShipment(t)
		_, err := sh.AddPackage(101)
		require.NoError(t, err)
		_, err = sh.Ship(time.Now().UTC())
		require.NoError(t, err)

		err = sh.RemovePackage(101)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestShipment_LineNumbering(t *testing.T) {
	t.Run("should never reassign a freed intermediate number", func(t *testing.T) {
		sh := mustShipment(t)
		_, err := sh.AddPackage(101)
		require.NoError(t, err)
		_, err = sh.AddPackage(102)
		require.NoError(t, err)
		_, err = sh.AddPackage(103)
		require.NoError(t, err)

		// Free line number 2, then add again: the new line continues after
		// the maximum, it does not fill the gap.
		require.NoError(t, sh.RemovePackage(102))

		line, err := sh.AddPackage(104)
		require.NoError(t, err)
		assert.Equal(t, 4, line.LineNo())
	})

	t.Run("should restart from one when all lines are removed", func(t *testing.T) {
		sh := mustShipment(t)
		_, err := sh.AddPackage(101)
		require.NoError(t, err)
		require.NoError(t, sh.RemovePackage(101))

		line, err := sh.AddPackage(102)

		require.NoError(t, err)
		assert.Equal(t, 1, line.LineNo())
	})
}

func TestShipment_Ship(t *testing.T) {
	t.Run("should transition to shipped and derive the business number", func(t *testing.T) {
		sh := mustShipment(t)
		shippedAt := time.Date(2026, 3, 14, 15, 42, 33, 0, time.UTC)

		number, err := sh.Ship(shippedAt)

		require.NoError(t, err)
		assert.Equal(t, "SN20260314-42-154233", number)
		assert.Equal(t, shipment.Shipped, sh.Status())
		require.NotNil(t, sh.Number())
		assert.Equal(t, number, *sh.Number())
	})

	t.Run("should reject shipping twice", func(t *testing.T) {
		sh := mustShipment(t)
		first, err := sh.Ship(time.Date(2026, 3, 14, 15, 42, 33, 0, time.UTC))
		require.NoError(t, err)

		_, err = sh.Ship(time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC))

		require.ErrorIs(t, err, errs.ErrInvalidState)
		// First number stays untouched.
		require.NotNil(t, sh.Number())
		assert.Equal(t, first, *sh.Number())
	})

	t.Run("should ship an empty shipment", func(t *testing.T) {
		sh := mustShipment(t)

		number, err := sh.Ship(time.Date(2026, 3, 14, 15, 42, 33, 0, time.UTC))

		require.NoError(t, err)
		assert.NotEmpty(t, number)
		assert.Empty(t, sh.PackageIDs())
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("should rebuild a shipped shipment with its lines", func(t *testing.T) {
		number := "SN20260314-42-154233"
		line1, err := shipment.NewLine(1, 101)
		require.NoError(t, err)
		line2, err := shipment.NewLine(3, 103)
		require.NoError(t, err)
		createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

		sh, err := shipment.RestoreShipment(
			42, shipment.Shipped, &number, 7, createdAt,
			[]shipment.Line{line1, line2},
		)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), sh.ID())
		assert.Equal(t, shipment.Shipped, sh.Status())
		assert.Equal(t, &number, sh.Number())
		assert.Equal(t, []uint64{101, 103}, sh.PackageIDs())
		require.NoError(t, sh.Validate())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := shipment.RestoreShipment(42, shipment.Unknown, nil, 7, time.Now(), nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := shipment.RestoreShipment(0, shipment.Open, nil, 7, time.Now(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestShipment_IsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		sh1 := mustShipment(t)
		sh2, err := shipment.RestoreShipment(42, shipment.Open, nil, 9, time.Now(), nil)
		require.NoError(t, err)
		sh3, err := shipment.RestoreShipment(43, shipment.Open, nil, 7, time.Now(), nil)
		require.NoError(t, err)

		assert.True(t, sh1.IsEqual(sh2))
		assert.False(t, sh1.IsEqual(sh3))
		assert.False(t, sh1.IsEqual(nil))
	})

	t.Run("unsaved shipments are never equal", func(t *testing.T) {
		sh1, err := shipment.NewShipment(7, time.Now())
		require.NoError(t, err)
		sh2, err := shipment.NewShipment(7, time.Now())
		require.NoError(t, err)

		assert.False(t, sh1.IsEqual(sh2))
	})
}
