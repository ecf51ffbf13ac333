package el

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/philjs-dev/philjs/reactive"
	"github.com/philjs-dev/philjs/vnode"
)

var (
	_ vnode.VNode         = VNode{}
	_ vnode.VKind         = VKind(0)
	_ vnode.Props         = Props{}
	_ vnode.Attr          = Attr{}
	_ vnode.EventHandler  = EventHandler{}
	_ vnode.Component     = Component(nil)
	_ vnode.Case[int]     = Case[int]{}
	_ vnode.ScriptsOption = ScriptsOption(nil)
	_ vnode.PathProvider  = PathProvider(nil)
)

type testPathProvider struct {
	path string
}

func (t testPathProvider) Path() string {
	return t.path
}

func TestElementConstructorsMatchVDOM(t *testing.T) {
	args := []any{
		vnode.ID("root"),
		vnode.Class("one", "two"),
		vnode.Hidden(),
		vnode.OnClick("noop"),
		"hello",
		vnode.Span("child"),
	}

	got := Div(args...)
	want := vnode.Div(args...)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Div() mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestElementNamesMatchVDOM(t *testing.T) {
	cases := []struct {
		name string
		got  *VNode
		want *vnode.VNode
	}{
		{"time", Time_("now"), vnode.Time_("now")},
		{"data", DataElement("value"), vnode.DataElement("value")},
		{"link", LinkEl(vnode.Rel("stylesheet")), vnode.LinkEl(vnode.Rel("stylesheet"))},
	}

	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Fatalf("%s element mismatch:\n got: %#v\nwant: %#v", tc.name, tc.got, tc.want)
		}
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") {
		t.Fatalf("IsVoidElement(\"br\") expected true")
	}
	if IsVoidElement("div") {
		t.Fatalf("IsVoidElement(\"div\") expected false")
	}
}

func TestTextHelpersMatchVDOM(t *testing.T) {
	if !reflect.DeepEqual(Text("hi"), vnode.Text("hi")) {
		t.Fatalf("Text() mismatch")
	}
	if !reflect.DeepEqual(Textf("hi %d", 2), vnode.Textf("hi %d", 2)) {
		t.Fatalf("Textf() mismatch")
	}
	if !reflect.DeepEqual(Raw("<b>hi</b>"), vnode.Raw("<b>hi</b>")) {
		t.Fatalf("Raw() mismatch")
	}
}

func TestFragmentHelpersMatchVDOM(t *testing.T) {
	args := []any{
		nil,
		"hello",
		vnode.Div("child"),
		[]*vnode.VNode{vnode.Span("nested")},
	}

	got := Fragment(args...)
	want := vnode.Fragment(args...)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Fragment() mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestConditionalHelpers(t *testing.T) {
	node := Text("ok")

	if If(true, node) != node {
		t.Fatalf("If(true) should return node")
	}
	if If(false, node) != nil {
		t.Fatalf("If(false) should return nil")
	}
	if IfElse(true, node, nil) != node {
		t.Fatalf("IfElse(true) should return ifTrue")
	}
	if IfElse(false, node, nil) != nil {
		t.Fatalf("IfElse(false) should return ifFalse")
	}
	if Unless(false, node) != node {
		t.Fatalf("Unless(false) should return node")
	}
	if Unless(true, node) != nil {
		t.Fatalf("Unless(true) should return nil")
	}
	if Show(true, node) != node {
		t.Fatalf("Show(true) should return node")
	}
	if Hide(true, node) != nil {
		t.Fatalf("Hide(true) should return nil")
	}
	if Either(node, nil) != node {
		t.Fatalf("Either should return first non-nil")
	}
	if Maybe(node) != node {
		t.Fatalf("Maybe should return node")
	}

	calls := 0
	result := When(false, func() *VNode {
		calls++
		return node
	})
	if result != nil || calls != 0 {
		t.Fatalf("When(false) should not call fn")
	}
	result = When(true, func() *VNode {
		calls++
		return node
	})
	if result != node || calls != 1 {
		t.Fatalf("When(true) should call fn once")
	}
	result = IfLazy(true, func() *VNode {
		calls++
		return node
	})
	if result != node || calls != 2 {
		t.Fatalf("IfLazy(true) should call fn once")
	}
	result = ShowWhen(true, func() *VNode {
		calls++
		return node
	})
	if result != node || calls != 3 {
		t.Fatalf("ShowWhen(true) should call fn once")
	}
}

func TestSwitchHelpers(t *testing.T) {
	one := Text("one")
	two := Text("two")
	def := Text("default")

	got := Switch("two",
		Case_("one", one),
		Case_("two", two),
		Default[string](def),
	)
	if got != two {
		t.Fatalf("Switch() should return matching case")
	}

	got = Switch("none",
		Case_("one", one),
		Default[string](def),
	)
	if got != def {
		t.Fatalf("Switch() should return default when no match")
	}
}

func TestRangeHelpers(t *testing.T) {
	items := []string{"a", "b", "c"}
	got := Range(items, func(item string, index int) *VNode {
		return Textf("%s:%d", item, index)
	})
	if len(got) != len(items) {
		t.Fatalf("Range() length mismatch: got %d want %d", len(got), len(items))
	}
	for i, node := range got {
		want := fmt.Sprintf("%s:%d", items[i], i)
		if node == nil || node.Kind != vnode.KindText || node.Text != want {
			t.Fatalf("Range() node mismatch at %d: got %#v want text %q", i, node, want)
		}
	}
}

func TestRangeMapHelper(t *testing.T) {
	items := map[string]int{"a": 1, "b": 2}
	got := RangeMap(items, func(key string, value int) *VNode {
		return Textf("%s:%d", key, value)
	})
	if len(got) != len(items) {
		t.Fatalf("RangeMap() length mismatch: got %d want %d", len(got), len(items))
	}

	seen := make(map[string]bool, len(items))
	for _, node := range got {
		if node == nil || node.Kind != vnode.KindText {
			t.Fatalf("RangeMap() returned non-text node: %#v", node)
		}
		seen[node.Text] = true
	}
	for key, value := range items {
		text := fmt.Sprintf("%s:%d", key, value)
		if !seen[text] {
			t.Fatalf("RangeMap() missing node %q", text)
		}
	}
}

func TestRepeatHelper(t *testing.T) {
	got := Repeat(3, func(i int) *VNode {
		return Textf("item-%d", i)
	})
	if len(got) != 3 {
		t.Fatalf("Repeat() length mismatch: got %d want 3", len(got))
	}
	for i, node := range got {
		want := fmt.Sprintf("item-%d", i)
		if node == nil || node.Kind != vnode.KindText || node.Text != want {
			t.Fatalf("Repeat() node mismatch at %d: got %#v want text %q", i, node, want)
		}
	}
}

func TestAttributeHelpersMatchVDOM(t *testing.T) {
	cases := []struct {
		name string
		got  Attr
		want vnode.Attr
	}{
		{"ID", ID("main"), vnode.ID("main")},
		{"Class", Class("a", "b"), vnode.Class("a", "b")},
		{"Data", Data("key", "value"), vnode.Data("key", "value")},
		{"AriaHidden", AriaHidden(true), vnode.AriaHidden(true)},
		{"Hidden", Hidden(), vnode.Hidden()},
		{"Download", Download("file.txt"), vnode.Download("file.txt")},
		{"Disabled", Disabled(), vnode.Disabled()},
	}

	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Fatalf("%s attribute mismatch:\n got: %#v\nwant: %#v", tc.name, tc.got, tc.want)
		}
	}
}

func TestEventHelpersMatchVDOM(t *testing.T) {
	cases := []struct {
		name string
		got  EventHandler
		want vnode.EventHandler
	}{
		{"OnClick", OnClick("noop"), vnode.OnClick("noop")},
		{"OnInput", OnInput("noop"), vnode.OnInput("noop")},
		{"OnSubmit", OnSubmit("noop"), vnode.OnSubmit("noop")},
		{"OnScrollEnd", OnScrollEnd("noop"), vnode.OnScrollEnd("noop")},
		{"OnLoad", OnLoad("noop"), vnode.OnLoad("noop")},
	}

	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Fatalf("%s event mismatch:\n got: %#v\nwant: %#v", tc.name, tc.got, tc.want)
		}
	}
}

func TestNavigationHelpersMatchVDOM(t *testing.T) {
	ctx := testPathProvider{path: "/about"}

	cases := []struct {
		name string
		got  *VNode
		want *vnode.VNode
	}{
		{"Link", Link("/about", Text("About")), vnode.Link("/about", vnode.Text("About"))},
		{"LinkPrefetch", LinkPrefetch("/about", Text("About")), vnode.LinkPrefetch("/about", vnode.Text("About"))},
		{"NavLinkActive", NavLink(ctx, "/about", Text("About")), vnode.NavLink(ctx, "/about", vnode.Text("About"))},
		{"NavLinkInactive", NavLink(ctx, "/blog", Text("Blog")), vnode.NavLink(ctx, "/blog", vnode.Text("Blog"))},
		{"NavLinkPrefix", NavLinkPrefix(ctx, "/about", Text("About")), vnode.NavLinkPrefix(ctx, "/about", vnode.Text("About"))},
	}

	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Fatalf("%s mismatch:\n got: %#v\nwant: %#v", tc.name, tc.got, tc.want)
		}
	}
}

func TestPhilJSScriptsMatchVDOM(t *testing.T) {
	cases := []struct {
		name string
		got  *VNode
		want *vnode.VNode
	}{
		{"default", PhilJSScripts(), vnode.PhilJSScripts()},
		{
			"options",
			PhilJSScripts(
				WithDebug(),
				WithScriptPath("/custom.js"),
				WithCSRFToken("token"),
				WithoutDefer(),
			),
			vnode.PhilJSScripts(
				vnode.WithDebug(),
				vnode.WithScriptPath("/custom.js"),
				vnode.WithCSRFToken("token"),
				vnode.WithoutDefer(),
			),
		},
	}

	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Fatalf("%s mismatch:\n got: %#v\nwant: %#v", tc.name, tc.got, tc.want)
		}
	}
}

func TestHookHelpers(t *testing.T) {
	config := map[string]any{"key": "value"}
	got := Hook("example", config)
	if got.Key != "v-hook" {
		t.Fatalf("Hook() key = %q, want %q", got.Key, "v-hook")
	}
	if s, ok := got.Value.(string); !ok || s == "" {
		t.Fatalf("Hook() value = %#v, want non-empty string", got.Value)
	}

	called := 0
	handlerAttr := OnEvent("ready", func(_ reactive.HookEvent) {
		called++
	})
	handler, ok := handlerAttr.Value.(func(reactive.HookEvent))
	if !ok {
		t.Fatalf("OnEvent() handler has unexpected type %T", handlerAttr.Value)
	}
	handler(reactive.HookEvent{Name: "other"})
	if called != 0 {
		t.Fatalf("OnEvent() should ignore non-matching events")
	}
	handler(reactive.HookEvent{Name: "ready"})
	if called != 1 {
		t.Fatalf("OnEvent() should call handler for matching event")
	}
}
