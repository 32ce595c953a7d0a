package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureHandler records everything reported through the global channel.
type captureHandler struct {
	warnings []*Warning
	panics   []*PanicReport
}

func (h *captureHandler) HandleWarning(w *Warning)   { h.warnings = append(h.warnings, w) }
func (h *captureHandler) HandlePanic(p *PanicReport) { h.panics = append(h.panics, p) }

func TestReport_SetsTimestampAndDispatches(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&Warning{Op: "app.Use", Code: CodeDuplicatePlugin, Message: "plugin already installed"})

	require.Len(t, handler.warnings, 1)
	w := handler.warnings[0]
	assert.Equal(t, "app.Use", w.Op)
	assert.Equal(t, CodeDuplicatePlugin, w.Code)
	assert.False(t, w.Timestamp.IsZero())
}

func TestReport_NilWarningIsIgnored(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(nil)

	assert.Empty(t, handler.warnings)
}

func TestWarnf_FormatsMessage(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Warnf("app.RegisterComponent", CodeDuplicateRegistration, 7, "component %q already registered", "button")

	require.Len(t, handler.warnings, 1)
	w := handler.warnings[0]
	assert.Equal(t, `component "button" already registered`, w.Message)
	assert.Equal(t, uint64(7), w.App)
}

func TestRecover_ReportsPanicWithStack(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("app.devtools")
		panic("devtools hook failed")
	}()

	require.Len(t, handler.panics, 1)
	p := handler.panics[0]
	assert.Equal(t, "app.devtools", p.Op)
	assert.Equal(t, "devtools hook failed", p.Value)
	assert.NotEmpty(t, p.StackTrace)
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)

	_, ok := getHandler().(*LogHandler)
	assert.True(t, ok)
}

func TestCode_String(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{CodeDuplicatePlugin, "duplicate-plugin"},
		{CodeInvalidPlugin, "invalid-plugin"},
		{CodeDuplicateMixin, "duplicate-mixin"},
		{CodeMixinsUnsupported, "mixins-unsupported"},
		{CodeDuplicateRegistration, "duplicate-registration"},
		{CodeReservedName, "reserved-name"},
		{CodeDuplicateProvide, "duplicate-provide"},
		{CodeInvalidRootProps, "invalid-root-props"},
		{CodeAlreadyMounted, "already-mounted"},
		{CodeNotMounted, "not-mounted"},
		{CodeConfigReplaced, "config-replaced"},
		{CodeForeignContainer, "foreign-container"},
		{Code(99), "unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.code.String())
	}
}

func TestWarning_String(t *testing.T) {
	w := &Warning{Op: "app.Provide", Code: CodeDuplicateProvide, App: 3, Message: "key overwritten"}
	assert.Equal(t, "app.Provide [duplicate-provide] app=3: key overwritten", w.String())

	w = &Warning{Op: "app.Provide", Code: CodeDuplicateProvide, Message: "key overwritten"}
	assert.Equal(t, "app.Provide [duplicate-provide]: key overwritten", w.String())
}
