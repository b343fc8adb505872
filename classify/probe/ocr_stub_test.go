//go:build !ocr

package probe

import (
	"context"
	"errors"
	"testing"
)

func TestTextInRasterStub(t *testing.T) {
	var p TextInRaster
	_, err := p.Inspect(context.Background(), "anything.pdf")
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("stub error = %v, want ErrOCRNotEnabled", err)
	}
}
