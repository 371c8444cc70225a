package common_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitienda/pos-terminal/internal/common"
)

var errBoom = errors.New("boom")

func TestCodeOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, common.CodeValidation, common.CodeOf(common.Validation(errBoom)))
	require.Equal(t, common.CodeNotFound, common.CodeOf(common.NotFound(errBoom)))
	require.Equal(t, common.CodePersistence, common.CodeOf(common.Persistence(errBoom)))
	require.Empty(t, common.CodeOf(errBoom))
	require.Empty(t, common.CodeOf(nil))
}

func TestUnwrapKeepsSentinels(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("add product: %w", common.Validation(errBoom))
	require.ErrorIs(t, wrapped, errBoom)
	require.Equal(t, common.CodeValidation, common.CodeOf(wrapped))
}
