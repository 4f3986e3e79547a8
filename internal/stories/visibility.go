package stories

import (
	"github.com/vango-dev/headless/pkg/atom"
	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/vdom"
	"github.com/vango-dev/headless/pkg/visibility"
)

// GroupVisibility names the visibility stories.
const GroupVisibility = "Visibility"

const (
	revealLabel  = "Click me to reveal content"
	revealedText = "Revealed content"
)

// revealPanel is a provider with a trigger button and a region.
func revealPanel(props visibility.Props, label, content string) reactive.Func {
	return visibility.Provider(props, func(h *visibility.Handle) *vdom.VNode {
		return vdom.Div(
			visibility.TriggerButton(h, label),
			visibility.Region(h, vdom.Div(content)),
		)
	})
}

// Visibility returns the visibility stories.
func Visibility() []Story {
	return []Story{
		New(GroupVisibility, "Standard",
			"One trigger toggles one region.",
			func(a *Actions) reactive.Component {
				return revealPanel(visibility.Props{OnChange: Handler[bool](a, "onChange")}, revealLabel, revealedText)
			}),
		New(GroupVisibility, "Translated Props",
			"Components with their own prop names consume the visibility binding.",
			func(a *Actions) reactive.Component {
				return visibility.Provider(visibility.Props{OnChange: Handler[bool](a, "onChange")}, func(h *visibility.Handle) *vdom.VNode {
					return vdom.Div(
						h.Consume(func(b visibility.Binding) *vdom.VNode {
							return selectButton(b.Toggle, revealLabel)
						}),
						h.Consume(func(b visibility.Binding) *vdom.VNode {
							return hideableContent(!b.IsVisible, revealedText)
						}),
					)
				})
			}),
		New(GroupVisibility, "Target With Trigger",
			"A modal that is its own trigger: clicking it hides it.",
			func(a *Actions) reactive.Component {
				return visibility.Provider(visibility.Props{OnChange: Handler[bool](a, "onChange")}, func(h *visibility.Handle) *vdom.VNode {
					return vdom.Div(
						visibility.TriggerButton(h, revealLabel),
						visibility.Dialog(h, "Click me to hide content"),
					)
				})
			}),
		New(GroupVisibility, "Target With Target",
			"Content is removed from the document while hidden.",
			func(a *Actions) reactive.Component {
				return visibility.Provider(visibility.Props{OnChange: Handler[bool](a, "onChange")}, func(h *visibility.Handle) *vdom.VNode {
					return vdom.Div(
						visibility.TriggerButton(h, revealLabel),
						vdom.Div(h.Target(), h.Content(overlay(h, revealedText))),
					)
				})
			}),
		New(GroupVisibility, "Multiple Targets",
			"One trigger between two regions.",
			func(a *Actions) reactive.Component {
				return visibility.Provider(visibility.Props{OnChange: Handler[bool](a, "onChange")}, func(h *visibility.Handle) *vdom.VNode {
					return vdom.Div(
						visibility.Region(h, vdom.Div(revealedText+" 1")),
						vdom.Div(visibility.TriggerButton(h, revealLabel)),
						visibility.Region(h, vdom.Div(revealedText+" 2")),
					)
				})
			}),
		New(GroupVisibility, "Multiple Triggers",
			"Two triggers for one region.",
			func(a *Actions) reactive.Component {
				return visibility.Provider(visibility.Props{OnChange: Handler[bool](a, "onChange")}, func(h *visibility.Handle) *vdom.VNode {
					return vdom.Div(
						vdom.Div(visibility.TriggerButton(h, revealLabel)),
						vdom.Div(visibility.TriggerButton(h, "Click me to reveal the same content")),
						visibility.Region(h, vdom.Div(revealedText)),
					)
				})
			}),
		New(GroupVisibility, "Mutually Exclusive",
			"Two control providers sharing a control key: showing one panel hides the other.",
			func(a *Actions) reactive.Component {
				key := visibility.NewControlKey()
				return reactive.New("MutuallyExclusive", func(o *reactive.Owner) *vdom.VNode {
					return vdom.Div(
						vdom.Div(visibility.ControlProvider(visibility.ControlProps{ContextKey: key},
							revealPanel(visibility.Props{}, revealLabel+" 1", revealedText+" 1"))),
						vdom.Div(visibility.ControlProvider(visibility.ControlProps{ContextKey: key},
							revealPanel(visibility.Props{}, revealLabel+" 2", revealedText+" 2"))),
					)
				})
			}),
		New(GroupVisibility, "Synced Providers",
			"Three providers share one context key.",
			func(a *Actions) reactive.Component {
				key := visibility.NewKey()
				return reactive.New("SyncedProviders", func(o *reactive.Owner) *vdom.VNode {
					return vdom.Div(
						vdom.Div(visibility.Provider(visibility.Props{ContextKey: key, OnChange: Handler[bool](a, "onChange")}, func(h *visibility.Handle) *vdom.VNode {
							return visibility.TriggerButton(h, revealLabel)
						})),
						vdom.Div(visibility.Provider(visibility.Props{ContextKey: key}, func(h *visibility.Handle) *vdom.VNode {
							return visibility.TriggerButton(h, "Click me to reveal the same content")
						})),
						vdom.Div(visibility.Provider(visibility.Props{ContextKey: key}, func(h *visibility.Handle) *vdom.VNode {
							return visibility.Region(h, vdom.Div(revealedText))
						})),
					)
				})
			}),
		New(GroupVisibility, "Controlled Providers",
			"A control provider keeps at most one panel visible and reports which.",
			func(a *Actions) reactive.Component {
				first := visibility.NewKey().Named("content-1")
				second := visibility.NewKey().Named("content-2")
				names := map[*atom.Key[bool]]string{first: "content-1", second: "content-2"}
				return visibility.ControlProvider(visibility.ControlProps{
					OnChange: func(key *atom.Key[bool]) { a.Record("control", names[key]) },
				},
					vdom.Div(revealPanel(visibility.Props{ContextKey: first}, revealLabel+" 1", revealedText+" 1")),
					vdom.Div(revealPanel(visibility.Props{ContextKey: second}, revealLabel+" 2", revealedText+" 2")),
				)
			}),
		New(GroupVisibility, "Show on Hover",
			"A consumer maps show and hide onto pointer events.",
			func(a *Actions) reactive.Component {
				return visibility.Provider(visibility.Props{OnChange: Handler[bool](a, "onChange")}, func(h *visibility.Handle) *vdom.VNode {
					return vdom.Div(
						h.Consume(func(b visibility.Binding) *vdom.VNode {
							return vdom.Button(
								vdom.ID(b.TriggerID),
								vdom.AriaControls(b.ContentID),
								vdom.OnMouseEnter(b.Show),
								vdom.OnMouseLeave(b.Hide),
								revealLabel,
							)
						}),
						visibility.Region(h, vdom.Div(revealedText)),
					)
				})
			}),
		New(GroupVisibility, "Switch Visibility",
			"A trigger inside one panel opens a dialog owned by another provider.",
			func(a *Actions) reactive.Component {
				key := visibility.NewKey()
				return reactive.New("SwitchVisibility", func(o *reactive.Owner) *vdom.VNode {
					return vdom.Div(
						visibility.Provider(visibility.Props{}, func(h *visibility.Handle) *vdom.VNode {
							return vdom.Div(
								visibility.TriggerButton(h, revealLabel+" 1"),
								visibility.Region(h,
									vdom.Div(revealedText+" 1"),
									vdom.Div(
										vdom.OnClick(h.Hide),
										visibility.TriggerButton(h, revealLabel+" 2", visibility.LinkedTo(key)),
									),
								),
							)
						}),
						visibility.Provider(visibility.Props{ContextKey: key, OnChange: Handler[bool](a, "onChange")}, func(h *visibility.Handle) *vdom.VNode {
							return visibility.Dialog(h, vdom.Div(revealedText+" 2"))
						}),
					)
				})
			}),
		New(GroupVisibility, "Inception",
			"A provider nested in another resets when the outer one hides.",
			func(a *Actions) reactive.Component {
				return visibility.Provider(visibility.Props{OnChange: Handler[bool](a, "outer")}, func(outer *visibility.Handle) *vdom.VNode {
					return vdom.Div(
						visibility.TriggerButton(outer, "Click me to reveal another visibility"),
						visibility.Region(outer, vdom.Div(
							revealPanel(visibility.Props{OnChange: Handler[bool](a, "inner")}, revealLabel, revealedText),
						)),
					)
				})
			}),
		New(GroupVisibility, "Hide on Escape Key",
			"Pressing Escape hides the revealed overlay.",
			func(a *Actions) reactive.Component {
				return visibility.Provider(visibility.Props{OnChange: Handler[bool](a, "onChange")}, func(h *visibility.Handle) *vdom.VNode {
					return vdom.Div(
						visibility.TriggerButton(h, revealLabel),
						visibility.HideOnEscape(h),
						vdom.Div(h.Target(), h.Content(overlay(h, revealedText))),
					)
				})
			}),
	}
}

// overlay is a clickable target region wrapping content.
func overlay(h *visibility.Handle, content string) *vdom.VNode {
	return vdom.Div(
		vdom.Role("region"),
		h.Bind(visibility.AsTarget(), visibility.AsTrigger()),
		vdom.Div(vdom.Class("overlay"),
			vdom.Div(vdom.Class("modal-content"), content),
		),
	)
}

// selectButton only understands onSelect, so it needs a translated binding.
func selectButton(onSelect func(), label string) *vdom.VNode {
	return vdom.Button(vdom.Type("button"), vdom.OnClick(onSelect), label)
}

// hideableContent only understands isHidden.
func hideableContent(isHidden bool, content string) *vdom.VNode {
	return vdom.Div(vdom.Role("region"), vdom.Hidden(isHidden), content)
}
