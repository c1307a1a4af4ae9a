package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("saved %s", "layout.yaml")
	p.Warnf("index %d ignored", 9)
	p.Errorf("bad")
	p.Infof("note")
	p.Printf("  plain")

	out := buf.String()
	assert.Contains(t, out, "saved layout.yaml")
	assert.Contains(t, out, "index 9 ignored")
	assert.Contains(t, out, "bad")
	assert.Contains(t, out, "  plain\n")
	assert.Equal(t, 5, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)

	assert.Same(t, p, Ctx(ctx))
	assert.NotNil(t, Ctx(context.Background()))
}
