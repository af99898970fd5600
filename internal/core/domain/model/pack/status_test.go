package pack_test

import (
	"fmt"
	"testing"

	"shipping/internal/core/domain/model/pack"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(pack.Unknown))
		assert.Equal(t, 1, int(pack.Open))
		assert.Equal(t, 2, int(pack.Packed))
		assert.Equal(t, 3, int(pack.Shipped))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []pack.Status{
			pack.Open,
			pack.Packed,
			pack.Shipped,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []pack.Status{
			pack.Unknown,
			pack.Status(-1),
			pack.Status(4),
			pack.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return persisted names", func(t *testing.T) {
		testCases := []struct {
			status   pack.Status
			expected string
		}{
			{pack.Open, "open"},
			{pack.Packed, "packed"},
			{pack.Shipped, "shipped"},
			{pack.Unknown, "unknown"},
			{pack.Status(99), "unknown"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should restore valid statuses from persisted strings", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected pack.Status
		}{
			{"open", pack.Open},
			{"packed", pack.Packed},
			{"shipped", pack.Shipped},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				status, err := pack.StatusFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject unrecognized strings", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "Packed", "sealed"} {
			status, err := pack.StatusFromString(input)

			require.Error(t, err)
			assert.Equal(t, pack.Unknown, status)
		}
	})
}

func TestStatus_ValidateOpen(t *testing.T) {
	t.Run("should allow edits in open status", func(t *testing.T) {
		require.NoError(t, pack.Open.ValidateOpen())
	})

	t.Run("should reject edits outside open status", func(t *testing.T) {
		lockedStatuses := []pack.Status{pack.Packed, pack.Shipped, pack.Unknown}

		for _, status := range lockedStatuses {
			t.Run(fmt.Sprintf("should reject edits in %s status", status.String()), func(t *testing.T) {
				err := status.ValidateOpen()

				require.Error(t, err)
				assert.IsType(t, &errs.InvalidStateError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("package is %s", status.String()))
			})
		}
	})
}

func TestStatus_Pack(t *testing.T) {
	t.Run("should allow transition from Open to Packed", func(t *testing.T) {
		newStatus, err := pack.Open.Pack()

		require.NoError(t, err)
		assert.Equal(t, pack.Packed, newStatus)
	})

	t.Run("should reject packing an already packed package", func(t *testing.T) {
		newStatus, err := pack.Packed.Pack()

		require.Error(t, err)
		assert.Equal(t, pack.Status(0), newStatus)
		assert.IsType(t, &errs.InvalidStateError{}, err)
		assert.Contains(t, err.Error(), "package is packed")
	})

	t.Run("should reject packing a shipped package", func(t *testing.T) {
		_, err := pack.Shipped.Pack()

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidStateError{}, err)
	})
}
