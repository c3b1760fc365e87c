package providers

import (
	"testing"

	"github.com/pbertain/wnbapuff/internal/teststubs"
)

func TestDataProviderInterfaceImplemented(t *testing.T) {
	var _ DataProvider = (*teststubs.StubProvider)(nil)
}
