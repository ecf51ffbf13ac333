// This file re-exports vnode element constructors for the el package.
package el

import "github.com/philjs-dev/philjs/vnode"

func IsVoidElement(tag string) bool {
	return vnode.IsVoidElement(tag)
}
func Html(args ...any) *VNode {
	return vnode.Html(args...)
}
func Head(args ...any) *VNode {
	return vnode.Head(args...)
}
func Body(args ...any) *VNode {
	return vnode.Body(args...)
}
func Title(args ...any) *VNode {
	return vnode.Title(args...)
}
func Meta(args ...any) *VNode {
	return vnode.Meta(args...)
}
func LinkEl(args ...any) *VNode {
	return vnode.LinkEl(args...)
}
func Base(args ...any) *VNode {
	return vnode.Base(args...)
}
func Header(args ...any) *VNode {
	return vnode.Header(args...)
}
func Footer(args ...any) *VNode {
	return vnode.Footer(args...)
}
func Main(args ...any) *VNode {
	return vnode.Main(args...)
}
func Nav(args ...any) *VNode {
	return vnode.Nav(args...)
}
func Section(args ...any) *VNode {
	return vnode.Section(args...)
}
func Article(args ...any) *VNode {
	return vnode.Article(args...)
}
func Aside(args ...any) *VNode {
	return vnode.Aside(args...)
}
func Address(args ...any) *VNode {
	return vnode.Address(args...)
}
func H1(args ...any) *VNode {
	return vnode.H1(args...)
}
func H2(args ...any) *VNode {
	return vnode.H2(args...)
}
func H3(args ...any) *VNode {
	return vnode.H3(args...)
}
func H4(args ...any) *VNode {
	return vnode.H4(args...)
}
func H5(args ...any) *VNode {
	return vnode.H5(args...)
}
func H6(args ...any) *VNode {
	return vnode.H6(args...)
}
func Hgroup(args ...any) *VNode {
	return vnode.Hgroup(args...)
}
func Div(args ...any) *VNode {
	return vnode.Div(args...)
}
func P(args ...any) *VNode {
	return vnode.P(args...)
}
func Span(args ...any) *VNode {
	return vnode.Span(args...)
}
func Pre(args ...any) *VNode {
	return vnode.Pre(args...)
}
func Blockquote(args ...any) *VNode {
	return vnode.Blockquote(args...)
}
func Ul(args ...any) *VNode {
	return vnode.Ul(args...)
}
func Ol(args ...any) *VNode {
	return vnode.Ol(args...)
}
func Li(args ...any) *VNode {
	return vnode.Li(args...)
}
func Dl(args ...any) *VNode {
	return vnode.Dl(args...)
}
func Dt(args ...any) *VNode {
	return vnode.Dt(args...)
}
func Dd(args ...any) *VNode {
	return vnode.Dd(args...)
}
func Hr(args ...any) *VNode {
	return vnode.Hr(args...)
}
func Figure(args ...any) *VNode {
	return vnode.Figure(args...)
}
func Figcaption(args ...any) *VNode {
	return vnode.Figcaption(args...)
}
func A(args ...any) *VNode {
	return vnode.A(args...)
}
func Strong(args ...any) *VNode {
	return vnode.Strong(args...)
}
func Em(args ...any) *VNode {
	return vnode.Em(args...)
}
func B(args ...any) *VNode {
	return vnode.B(args...)
}
func I(args ...any) *VNode {
	return vnode.I(args...)
}
func U(args ...any) *VNode {
	return vnode.U(args...)
}
func S(args ...any) *VNode {
	return vnode.S(args...)
}
func Small(args ...any) *VNode {
	return vnode.Small(args...)
}
func Mark(args ...any) *VNode {
	return vnode.Mark(args...)
}
func Sub(args ...any) *VNode {
	return vnode.Sub(args...)
}
func Sup(args ...any) *VNode {
	return vnode.Sup(args...)
}
func Code(args ...any) *VNode {
	return vnode.Code(args...)
}
func Kbd(args ...any) *VNode {
	return vnode.Kbd(args...)
}
func Samp(args ...any) *VNode {
	return vnode.Samp(args...)
}
func Var(args ...any) *VNode {
	return vnode.Var(args...)
}
func Abbr(args ...any) *VNode {
	return vnode.Abbr(args...)
}
func Time_(args ...any) *VNode {
	return vnode.Time_(args...)
}
func Cite(args ...any) *VNode {
	return vnode.Cite(args...)
}
func Q(args ...any) *VNode {
	return vnode.Q(args...)
}
func Dfn(args ...any) *VNode {
	return vnode.Dfn(args...)
}
func Ruby(args ...any) *VNode {
	return vnode.Ruby(args...)
}
func Rt(args ...any) *VNode {
	return vnode.Rt(args...)
}
func Rp(args ...any) *VNode {
	return vnode.Rp(args...)
}
func Bdi(args ...any) *VNode {
	return vnode.Bdi(args...)
}
func Bdo(args ...any) *VNode {
	return vnode.Bdo(args...)
}
func DataElement(args ...any) *VNode {
	return vnode.DataElement(args...)
}
func Br(args ...any) *VNode {
	return vnode.Br(args...)
}
func Wbr(args ...any) *VNode {
	return vnode.Wbr(args...)
}
func Form(args ...any) *VNode {
	return vnode.Form(args...)
}
func Input(args ...any) *VNode {
	return vnode.Input(args...)
}
func Textarea(args ...any) *VNode {
	return vnode.Textarea(args...)
}
func Select(args ...any) *VNode {
	return vnode.Select(args...)
}
func Option(args ...any) *VNode {
	return vnode.Option(args...)
}
func Optgroup(args ...any) *VNode {
	return vnode.Optgroup(args...)
}
func Button(args ...any) *VNode {
	return vnode.Button(args...)
}
func Label(args ...any) *VNode {
	return vnode.Label(args...)
}
func Fieldset(args ...any) *VNode {
	return vnode.Fieldset(args...)
}
func Legend(args ...any) *VNode {
	return vnode.Legend(args...)
}
func Datalist(args ...any) *VNode {
	return vnode.Datalist(args...)
}
func Output(args ...any) *VNode {
	return vnode.Output(args...)
}
func Progress(args ...any) *VNode {
	return vnode.Progress(args...)
}
func Meter(args ...any) *VNode {
	return vnode.Meter(args...)
}
func Table(args ...any) *VNode {
	return vnode.Table(args...)
}
func Thead(args ...any) *VNode {
	return vnode.Thead(args...)
}
func Tbody(args ...any) *VNode {
	return vnode.Tbody(args...)
}
func Tfoot(args ...any) *VNode {
	return vnode.Tfoot(args...)
}
func Tr(args ...any) *VNode {
	return vnode.Tr(args...)
}
func Th(args ...any) *VNode {
	return vnode.Th(args...)
}
func Td(args ...any) *VNode {
	return vnode.Td(args...)
}
func Caption(args ...any) *VNode {
	return vnode.Caption(args...)
}
func Colgroup(args ...any) *VNode {
	return vnode.Colgroup(args...)
}
func Col(args ...any) *VNode {
	return vnode.Col(args...)
}
func Img(args ...any) *VNode {
	return vnode.Img(args...)
}
func Picture(args ...any) *VNode {
	return vnode.Picture(args...)
}
func Source(args ...any) *VNode {
	return vnode.Source(args...)
}
func Video(args ...any) *VNode {
	return vnode.Video(args...)
}
func Audio(args ...any) *VNode {
	return vnode.Audio(args...)
}
func Track(args ...any) *VNode {
	return vnode.Track(args...)
}
func Iframe(args ...any) *VNode {
	return vnode.Iframe(args...)
}
func Embed(args ...any) *VNode {
	return vnode.Embed(args...)
}
func Object(args ...any) *VNode {
	return vnode.Object(args...)
}
func Param(args ...any) *VNode {
	return vnode.Param(args...)
}
func Canvas(args ...any) *VNode {
	return vnode.Canvas(args...)
}
func Svg(args ...any) *VNode {
	return vnode.Svg(args...)
}

// SVG child elements
func Circle(args ...any) *VNode {
	return vnode.Circle(args...)
}
func Ellipse(args ...any) *VNode {
	return vnode.Ellipse(args...)
}
func Line(args ...any) *VNode {
	return vnode.Line(args...)
}
func Path(args ...any) *VNode {
	return vnode.Path(args...)
}
func Polygon(args ...any) *VNode {
	return vnode.Polygon(args...)
}
func Polyline(args ...any) *VNode {
	return vnode.Polyline(args...)
}
func Rect(args ...any) *VNode {
	return vnode.Rect(args...)
}
func G(args ...any) *VNode {
	return vnode.G(args...)
}
func Defs(args ...any) *VNode {
	return vnode.Defs(args...)
}
func Use(args ...any) *VNode {
	return vnode.Use(args...)
}

func Math(args ...any) *VNode {
	return vnode.Math(args...)
}
func Map_(args ...any) *VNode {
	return vnode.Map_(args...)
}
func Area(args ...any) *VNode {
	return vnode.Area(args...)
}
func Details(args ...any) *VNode {
	return vnode.Details(args...)
}
func Summary(args ...any) *VNode {
	return vnode.Summary(args...)
}
func Dialog(args ...any) *VNode {
	return vnode.Dialog(args...)
}
func Menu(args ...any) *VNode {
	return vnode.Menu(args...)
}
func Script(args ...any) *VNode {
	return vnode.Script(args...)
}
func Noscript(args ...any) *VNode {
	return vnode.Noscript(args...)
}
func Template(args ...any) *VNode {
	return vnode.Template(args...)
}
func Slot(args ...any) *VNode {
	return vnode.Slot(args...)
}
func Style(args ...any) *VNode {
	return vnode.Style(args...)
}
func CustomElement(tag string, args ...any) *VNode {
	return vnode.CustomElement(tag, args...)
}
