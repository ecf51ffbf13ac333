// Package vtest provides testing helpers for PhilJS components.
//
// The vtest package reduces boilerplate when asserting on rendered
// output by providing a render-to-string helper and a small set of
// substring/attribute assertions.
//
// # Quick Start
//
//	func TestDashboard(t *testing.T) {
//	    node := Dashboard()
//	    vtest.ExpectContains(t, node, "Welcome")
//	}
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, node, "Welcome Admin")
//	vtest.ExpectNotContains(t, node, "Error")
//	vtest.ExpectElement(t, node, "button")
//	vtest.ExpectAttribute(t, node, "class", "btn-primary")
package vtest
