// Package islands provides JavaScript integration for PhilJS components.
//
// Islands allow embedding third-party JavaScript libraries or custom client-side
// logic while maintaining the component lifecycle and server communication.
//
// Usage:
//
//	JSIsland("my-chart", "/js/chart.js", JSProps{"data": [...]})
package islands
