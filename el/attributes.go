// This file re-exports vnode attribute helpers for the el package.
package el

import "github.com/philjs-dev/philjs/vnode"

func ID(id string) Attr {
	return vnode.ID(id)
}
func Class(classes ...string) Attr {
	return vnode.Class(classes...)
}
func StyleAttr(style string) Attr {
	return vnode.StyleAttr(style)
}
func Data(key, value string) Attr {
	return vnode.Data(key, value)
}
func DataAttr(key, value string) Attr {
	return vnode.DataAttr(key, value)
}
func Role(role string) Attr {
	return vnode.Role(role)
}
func AriaLabel(label string) Attr {
	return vnode.AriaLabel(label)
}
func AriaHidden(hidden bool) Attr {
	return vnode.AriaHidden(hidden)
}
func AriaExpanded(expanded bool) Attr {
	return vnode.AriaExpanded(expanded)
}
func AriaDescribedBy(id string) Attr {
	return vnode.AriaDescribedBy(id)
}
func AriaLabelledBy(id string) Attr {
	return vnode.AriaLabelledBy(id)
}
func AriaLive(mode string) Attr {
	return vnode.AriaLive(mode)
}
func AriaControls(id string) Attr {
	return vnode.AriaControls(id)
}
func AriaCurrent(value string) Attr {
	return vnode.AriaCurrent(value)
}
func AriaDisabled(disabled bool) Attr {
	return vnode.AriaDisabled(disabled)
}
func AriaPressed(pressed string) Attr {
	return vnode.AriaPressed(pressed)
}
func AriaSelected(selected bool) Attr {
	return vnode.AriaSelected(selected)
}
func AriaHasPopup(value string) Attr {
	return vnode.AriaHasPopup(value)
}
func AriaModal(modal bool) Attr {
	return vnode.AriaModal(modal)
}
func AriaAtomic(atomic bool) Attr {
	return vnode.AriaAtomic(atomic)
}
func AriaBusy(busy bool) Attr {
	return vnode.AriaBusy(busy)
}
func AriaValueNow(value float64) Attr {
	return vnode.AriaValueNow(value)
}
func AriaValueMin(value float64) Attr {
	return vnode.AriaValueMin(value)
}
func AriaValueMax(value float64) Attr {
	return vnode.AriaValueMax(value)
}
func TabIndex(index int) Attr {
	return vnode.TabIndex(index)
}
func AccessKey(key string) Attr {
	return vnode.AccessKey(key)
}
func Hidden() Attr {
	return vnode.Hidden()
}
func TitleAttr(title string) Attr {
	return vnode.TitleAttr(title)
}
func ContentEditable(editable bool) Attr {
	return vnode.ContentEditable(editable)
}
func Draggable() Attr {
	return vnode.Draggable()
}
func Spellcheck(check bool) Attr {
	return vnode.Spellcheck(check)
}
func Lang(lang string) Attr {
	return vnode.Lang(lang)
}
func Dir(dir string) Attr {
	return vnode.Dir(dir)
}
func Href(url string) Attr {
	return vnode.Href(url)
}
func Target(target string) Attr {
	return vnode.Target(target)
}
func Rel(rel string) Attr {
	return vnode.Rel(rel)
}
func Download(filename ...string) Attr {
	return vnode.Download(filename...)
}
func Hreflang(lang string) Attr {
	return vnode.Hreflang(lang)
}
func Name(name string) Attr {
	return vnode.Name(name)
}
func Value(value string) Attr {
	return vnode.Value(value)
}
func Type(t string) Attr {
	return vnode.Type(t)
}
func Placeholder(text string) Attr {
	return vnode.Placeholder(text)
}
func Disabled() Attr {
	return vnode.Disabled()
}
func Readonly() Attr {
	return vnode.Readonly()
}
func Required() Attr {
	return vnode.Required()
}
func Checked() Attr {
	return vnode.Checked()
}
func Selected() Attr {
	return vnode.Selected()
}
func Multiple() Attr {
	return vnode.Multiple()
}
func Autofocus() Attr {
	return vnode.Autofocus()
}
func Autocomplete(value string) Attr {
	return vnode.Autocomplete(value)
}
func Pattern(pattern string) Attr {
	return vnode.Pattern(pattern)
}
func MinLength(n int) Attr {
	return vnode.MinLength(n)
}
func MaxLength(n int) Attr {
	return vnode.MaxLength(n)
}
func Min(value string) Attr {
	return vnode.Min(value)
}
func Max(value string) Attr {
	return vnode.Max(value)
}
func Step(value string) Attr {
	return vnode.Step(value)
}
func Accept(types string) Attr {
	return vnode.Accept(types)
}
func Capture(mode string) Attr {
	return vnode.Capture(mode)
}
func Rows(n int) Attr {
	return vnode.Rows(n)
}
func Cols(n int) Attr {
	return vnode.Cols(n)
}
func Wrap(mode string) Attr {
	return vnode.Wrap(mode)
}
func Action(url string) Attr {
	return vnode.Action(url)
}
func Method(method string) Attr {
	return vnode.Method(method)
}
func Enctype(enctype string) Attr {
	return vnode.Enctype(enctype)
}
func Novalidate() Attr {
	return vnode.Novalidate()
}
func For(id string) Attr {
	return vnode.For(id)
}
func FormAttr(id string) Attr {
	return vnode.FormAttr(id)
}
func Src(url string) Attr {
	return vnode.Src(url)
}
func Alt(text string) Attr {
	return vnode.Alt(text)
}
func Width(w int) Attr {
	return vnode.Width(w)
}
func Height(h int) Attr {
	return vnode.Height(h)
}
func Loading(mode string) Attr {
	return vnode.Loading(mode)
}
func Decoding(mode string) Attr {
	return vnode.Decoding(mode)
}
func Srcset(srcset string) Attr {
	return vnode.Srcset(srcset)
}
func SizesAttr(sizes string) Attr {
	return vnode.SizesAttr(sizes)
}
func Controls() Attr {
	return vnode.Controls()
}
func Autoplay() Attr {
	return vnode.Autoplay()
}
func Loop() Attr {
	return vnode.Loop()
}
func MutedAttr() Attr {
	return vnode.MutedAttr()
}
func Preload(mode string) Attr {
	return vnode.Preload(mode)
}
func Poster(url string) Attr {
	return vnode.Poster(url)
}
func Playsinline() Attr {
	return vnode.Playsinline()
}
func Sandbox(value string) Attr {
	return vnode.Sandbox(value)
}
func Allow(value string) Attr {
	return vnode.Allow(value)
}
func Allowfullscreen() Attr {
	return vnode.Allowfullscreen()
}
func Colspan(n int) Attr {
	return vnode.Colspan(n)
}
func Rowspan(n int) Attr {
	return vnode.Rowspan(n)
}
func Scope(scope string) Attr {
	return vnode.Scope(scope)
}
func HeadersAttr(ids string) Attr {
	return vnode.HeadersAttr(ids)
}
func Charset(charset string) Attr {
	return vnode.Charset(charset)
}
func Content(content string) Attr {
	return vnode.Content(content)
}
func HttpEquiv(value string) Attr {
	return vnode.HttpEquiv(value)
}
func ClassIf(condition bool, class string) Attr {
	return vnode.ClassIf(condition, class)
}
func AttrIf(condition bool, a Attr) Attr {
	return vnode.AttrIf(condition, a)
}
func Classes(classes ...any) Attr {
	return vnode.Classes(classes...)
}
func Open() Attr {
	return vnode.Open()
}
func Defer_() Attr {
	return vnode.Defer_()
}
func Async() Attr {
	return vnode.Async()
}
func Crossorigin(value string) Attr {
	return vnode.Crossorigin(value)
}
func Integrity(value string) Attr {
	return vnode.Integrity(value)
}
func List(id string) Attr {
	return vnode.List(id)
}
func Inputmode(mode string) Attr {
	return vnode.Inputmode(mode)
}
func Enterkeyhint(hint string) Attr {
	return vnode.Enterkeyhint(hint)
}
