package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergedOptions_MixinOrderLaterWins(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Mixin(&ComponentOptions{Data: map[string]any{"size": "small", "color": "red"}})
	app.Mixin(&ComponentOptions{Data: map[string]any{"size": "large"}})

	comp := &ComponentOptions{Name: "panel", Data: map[string]any{"color": "blue"}}
	merged := app.Context().MergedOptions(comp)

	assert.Equal(t, "panel", merged.Name)
	assert.Equal(t, "large", merged.Data["size"], "later mixin overrides earlier")
	assert.Equal(t, "blue", merged.Data["color"], "component overrides mixins")
}

func TestMergedOptions_ComponentMixinsApplyBeforeComponent(t *testing.T) {
	app, _, _ := newTestApp(t)

	shared := &ComponentOptions{
		Props:   []string{"shared-prop"},
		Methods: map[string]any{"greet": "mixin"},
	}
	comp := &ComponentOptions{
		Mixins:  []*ComponentOptions{shared},
		Methods: map[string]any{"greet": "component"},
	}

	merged := app.Context().MergedOptions(comp)

	assert.Equal(t, []string{"shared-prop"}, merged.Props)
	assert.Equal(t, "component", merged.Methods["greet"])
}

func TestMergedOptions_CustomStrategy(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Config().OptionMergeStrategies["hooks"] = func(to, from any) any {
		if to == nil {
			return from
		}
		return to.(string) + "+" + from.(string)
	}
	app.Mixin(&ComponentOptions{Custom: map[string]any{"hooks": "a"}})
	app.Mixin(&ComponentOptions{Custom: map[string]any{"hooks": "b"}})

	merged := app.Context().MergedOptions(&ComponentOptions{Custom: map[string]any{"hooks": "c"}})

	assert.Equal(t, "a+b+c", merged.Custom["hooks"])
}

func TestMergedOptions_CustomWithoutStrategyLastWins(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Mixin(&ComponentOptions{Custom: map[string]any{"route": "/old"}})

	merged := app.Context().MergedOptions(&ComponentOptions{Custom: map[string]any{"route": "/new"}})

	assert.Equal(t, "/new", merged.Custom["route"])
}

func TestMergedOptions_MemoizedPerComponentIdentity(t *testing.T) {
	app, _, _ := newTestApp(t)

	comp := &ComponentOptions{Name: "panel"}
	first := app.Context().MergedOptions(comp)
	second := app.Context().MergedOptions(comp)

	assert.Same(t, first, second)

	other := app.Context().MergedOptions(&ComponentOptions{Name: "panel"})
	assert.NotSame(t, first, other, "cache is keyed by identity, not equality")
}

func TestMergedOptions_CachesAreNotSharedAcrossApps(t *testing.T) {
	factory := NewFactory(&testRenderer{})
	first := factory.CreateApp(&ComponentOptions{}, nil)
	second := factory.CreateApp(&ComponentOptions{}, nil)

	comp := &ComponentOptions{Name: "panel"}
	assert.NotSame(t, first.Context().MergedOptions(comp), second.Context().MergedOptions(comp))
}

func TestMergedOptions_SetupAndRenderOverride(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Mixin(&ComponentOptions{Render: func(props Props) any { return "mixin" }})

	comp := &ComponentOptions{Render: func(props Props) any { return "component" }}
	merged := app.Context().MergedOptions(comp)

	require.NotNil(t, merged.Render)
	assert.Equal(t, "component", merged.Render(nil))
}

func TestNormalizedProps_CamelizesAndMemoizes(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Mixin(&ComponentOptions{Props: []string{"max-items"}})

	comp := &ComponentOptions{Props: []string{"item-size", "title"}}
	props := app.Context().NormalizedProps(comp)

	assert.Equal(t, []string{"maxItems", "itemSize", "title"}, props)

	again := app.Context().NormalizedProps(comp)
	assert.Same(t, &props[0], &again[0], "second lookup hits the cache")
}

func TestNormalizedProps_NilComponent(t *testing.T) {
	app, _, _ := newTestApp(t)
	assert.Nil(t, app.Context().NormalizedProps(nil))
}

func TestCamelize(t *testing.T) {
	cases := map[string]string{
		"title":        "title",
		"max-items":    "maxItems",
		"a-b-c":        "aBC",
		"trailing-":    "trailing",
		"double--dash": "doubleDash",
	}
	for in, want := range cases {
		assert.Equal(t, want, camelize(in), "camelize(%q)", in)
	}
}
