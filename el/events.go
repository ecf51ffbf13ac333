// This file re-exports vnode event helpers for the el package.
package el

import "github.com/philjs-dev/philjs/vnode"

func OnClick(handler any) EventHandler {
	return vnode.OnClick(handler)
}
func OnDblClick(handler any) EventHandler {
	return vnode.OnDblClick(handler)
}
func OnMouseDown(handler any) EventHandler {
	return vnode.OnMouseDown(handler)
}
func OnMouseUp(handler any) EventHandler {
	return vnode.OnMouseUp(handler)
}
func OnMouseMove(handler any) EventHandler {
	return vnode.OnMouseMove(handler)
}
func OnMouseEnter(handler any) EventHandler {
	return vnode.OnMouseEnter(handler)
}
func OnMouseLeave(handler any) EventHandler {
	return vnode.OnMouseLeave(handler)
}
func OnMouseOver(handler any) EventHandler {
	return vnode.OnMouseOver(handler)
}
func OnMouseOut(handler any) EventHandler {
	return vnode.OnMouseOut(handler)
}
func OnContextMenu(handler any) EventHandler {
	return vnode.OnContextMenu(handler)
}
func OnWheel(handler any) EventHandler {
	return vnode.OnWheel(handler)
}
func OnKeyDown(handler any) EventHandler {
	return vnode.OnKeyDown(handler)
}
func OnKeyUp(handler any) EventHandler {
	return vnode.OnKeyUp(handler)
}
func OnKeyPress(handler any) EventHandler {
	return vnode.OnKeyPress(handler)
}
func OnInput(handler any) EventHandler {
	return vnode.OnInput(handler)
}
func OnChange(handler any) EventHandler {
	return vnode.OnChange(handler)
}
func OnSubmit(handler any) EventHandler {
	return vnode.OnSubmit(handler)
}
func OnFocus(handler any) EventHandler {
	return vnode.OnFocus(handler)
}
func OnBlur(handler any) EventHandler {
	return vnode.OnBlur(handler)
}
func OnFocusIn(handler any) EventHandler {
	return vnode.OnFocusIn(handler)
}
func OnFocusOut(handler any) EventHandler {
	return vnode.OnFocusOut(handler)
}
func OnSelect(handler any) EventHandler {
	return vnode.OnSelect(handler)
}
func OnInvalid(handler any) EventHandler {
	return vnode.OnInvalid(handler)
}
func OnReset(handler any) EventHandler {
	return vnode.OnReset(handler)
}
func OnDragStart(handler any) EventHandler {
	return vnode.OnDragStart(handler)
}
func OnDrag(handler any) EventHandler {
	return vnode.OnDrag(handler)
}
func OnDragEnd(handler any) EventHandler {
	return vnode.OnDragEnd(handler)
}
func OnDragEnter(handler any) EventHandler {
	return vnode.OnDragEnter(handler)
}
func OnDragOver(handler any) EventHandler {
	return vnode.OnDragOver(handler)
}
func OnDragLeave(handler any) EventHandler {
	return vnode.OnDragLeave(handler)
}
func OnDrop(handler any) EventHandler {
	return vnode.OnDrop(handler)
}
func OnTouchStart(handler any) EventHandler {
	return vnode.OnTouchStart(handler)
}
func OnTouchMove(handler any) EventHandler {
	return vnode.OnTouchMove(handler)
}
func OnTouchEnd(handler any) EventHandler {
	return vnode.OnTouchEnd(handler)
}
func OnTouchCancel(handler any) EventHandler {
	return vnode.OnTouchCancel(handler)
}
func OnPointerDown(handler any) EventHandler {
	return vnode.OnPointerDown(handler)
}
func OnPointerUp(handler any) EventHandler {
	return vnode.OnPointerUp(handler)
}
func OnPointerMove(handler any) EventHandler {
	return vnode.OnPointerMove(handler)
}
func OnPointerEnter(handler any) EventHandler {
	return vnode.OnPointerEnter(handler)
}
func OnPointerLeave(handler any) EventHandler {
	return vnode.OnPointerLeave(handler)
}
func OnPointerCancel(handler any) EventHandler {
	return vnode.OnPointerCancel(handler)
}
func OnScroll(handler any) EventHandler {
	return vnode.OnScroll(handler)
}
func OnScrollEnd(handler any) EventHandler {
	return vnode.OnScrollEnd(handler)
}
func OnPlay(handler any) EventHandler {
	return vnode.OnPlay(handler)
}
func OnPause(handler any) EventHandler {
	return vnode.OnPause(handler)
}
func OnEnded(handler any) EventHandler {
	return vnode.OnEnded(handler)
}
func OnTimeUpdate(handler any) EventHandler {
	return vnode.OnTimeUpdate(handler)
}
func OnLoadStart(handler any) EventHandler {
	return vnode.OnLoadStart(handler)
}
func OnLoadedData(handler any) EventHandler {
	return vnode.OnLoadedData(handler)
}
func OnLoadedMetadata(handler any) EventHandler {
	return vnode.OnLoadedMetadata(handler)
}
func OnCanPlay(handler any) EventHandler {
	return vnode.OnCanPlay(handler)
}
func OnCanPlayThrough(handler any) EventHandler {
	return vnode.OnCanPlayThrough(handler)
}
func OnProgress(handler any) EventHandler {
	return vnode.OnProgress(handler)
}
func OnSeeking(handler any) EventHandler {
	return vnode.OnSeeking(handler)
}
func OnSeeked(handler any) EventHandler {
	return vnode.OnSeeked(handler)
}
func OnVolumeChange(handler any) EventHandler {
	return vnode.OnVolumeChange(handler)
}
func OnRateChange(handler any) EventHandler {
	return vnode.OnRateChange(handler)
}
func OnDurationChange(handler any) EventHandler {
	return vnode.OnDurationChange(handler)
}
func OnWaiting(handler any) EventHandler {
	return vnode.OnWaiting(handler)
}
func OnPlaying(handler any) EventHandler {
	return vnode.OnPlaying(handler)
}
func OnStalled(handler any) EventHandler {
	return vnode.OnStalled(handler)
}
func OnSuspend(handler any) EventHandler {
	return vnode.OnSuspend(handler)
}
func OnEmptied(handler any) EventHandler {
	return vnode.OnEmptied(handler)
}
func OnError(handler any) EventHandler {
	return vnode.OnError(handler)
}
func OnLoad(handler any) EventHandler {
	return vnode.OnLoad(handler)
}
func OnAbort(handler any) EventHandler {
	return vnode.OnAbort(handler)
}
func OnAnimationStart(handler any) EventHandler {
	return vnode.OnAnimationStart(handler)
}
func OnAnimationEnd(handler any) EventHandler {
	return vnode.OnAnimationEnd(handler)
}
func OnAnimationIteration(handler any) EventHandler {
	return vnode.OnAnimationIteration(handler)
}
func OnAnimationCancel(handler any) EventHandler {
	return vnode.OnAnimationCancel(handler)
}
func OnTransitionStart(handler any) EventHandler {
	return vnode.OnTransitionStart(handler)
}
func OnTransitionEnd(handler any) EventHandler {
	return vnode.OnTransitionEnd(handler)
}
func OnTransitionRun(handler any) EventHandler {
	return vnode.OnTransitionRun(handler)
}
func OnTransitionCancel(handler any) EventHandler {
	return vnode.OnTransitionCancel(handler)
}
func OnCopy(handler any) EventHandler {
	return vnode.OnCopy(handler)
}
func OnCut(handler any) EventHandler {
	return vnode.OnCut(handler)
}
func OnPaste(handler any) EventHandler {
	return vnode.OnPaste(handler)
}
func OnToggle(handler any) EventHandler {
	return vnode.OnToggle(handler)
}
