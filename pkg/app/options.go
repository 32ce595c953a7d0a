package app

import "strings"

// MergedOptions folds the application's global mixins and the component's own
// mixin chain into one resolved bundle. Mixins apply in registration order
// and later bundles override earlier ones; the component's own options apply
// last. Custom options merge through Config.OptionMergeStrategies.
//
// Results are memoized per component identity in the context's
// merged-options cache, which lives as long as the context itself.
func (c *Context) MergedOptions(comp *ComponentOptions) *ComponentOptions {
	if comp == nil {
		return nil
	}
	if cached, ok := c.optionsCache[comp]; ok {
		return cached
	}

	merged := &ComponentOptions{}
	strats := c.config.OptionMergeStrategies
	for _, m := range c.mixins {
		mergeBundle(merged, m, strats)
	}
	mergeBundle(merged, comp, strats)

	c.optionsCache[comp] = merged
	return merged
}

// mergeBundle applies from on top of to. A bundle's own mixins apply before
// the bundle itself, so the bundle overrides its mixins.
func mergeBundle(to, from *ComponentOptions, strats map[string]MergeStrategy) {
	if from == nil {
		return
	}
	for _, m := range from.Mixins {
		mergeBundle(to, m, strats)
	}

	if from.Name != "" {
		to.Name = from.Name
	}
	to.Props = appendUnique(to.Props, from.Props)
	to.Data = mergeValues(to.Data, from.Data)
	to.Methods = mergeValues(to.Methods, from.Methods)
	if from.Setup != nil {
		to.Setup = from.Setup
	}
	if from.Render != nil {
		to.Render = from.Render
	}
	to.Expose = appendUnique(to.Expose, from.Expose)

	for key, value := range from.Custom {
		if to.Custom == nil {
			to.Custom = map[string]any{}
		}
		if strat, ok := strats[key]; ok {
			to.Custom[key] = strat(to.Custom[key], value)
		} else {
			to.Custom[key] = value
		}
	}
}

// NormalizedProps returns the component's declared prop names in camel-case
// form, after mixin merging. Results are memoized per component identity in
// the context's normalized-props cache.
func (c *Context) NormalizedProps(comp *ComponentOptions) []string {
	if comp == nil {
		return nil
	}
	if cached, ok := c.propsCache[comp]; ok {
		return cached
	}

	merged := c.MergedOptions(comp)
	names := make([]string, len(merged.Props))
	for i, name := range merged.Props {
		names[i] = camelize(name)
	}
	c.propsCache[comp] = names
	return names
}

// camelize converts kebab-case to camelCase ("max-items" -> "maxItems").
func camelize(name string) string {
	if !strings.Contains(name, "-") {
		return name
	}
	parts := strings.Split(name, "-")
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}
	return sb.String()
}

func appendUnique(to, from []string) []string {
	for _, candidate := range from {
		found := false
		for _, existing := range to {
			if existing == candidate {
				found = true
				break
			}
		}
		if !found {
			to = append(to, candidate)
		}
	}
	return to
}

func mergeValues(to, from map[string]any) map[string]any {
	if len(from) == 0 {
		return to
	}
	if to == nil {
		to = make(map[string]any, len(from))
	}
	for k, v := range from {
		to[k] = v
	}
	return to
}
