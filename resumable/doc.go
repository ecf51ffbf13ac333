// Package resumable defines the persisted-state protocol that lets a
// server-rendered page become interactive on the client without re-running
// component bodies.
//
// A StateTable is a JSON-serializable snapshot of everything the client
// needs to resume: for every interactive element, which DOM events it
// listens for and which registered handler (plus captured data) each one
// resolves to, and which signals were serialized into the markup so their
// values can be restored without re-invoking the fetchers/computations that
// originally produced them.
//
// Handlers themselves cannot be serialized (Go closures have no portable
// representation), so authors register them ahead of time under a stable
// name via Register, and a StateTable only ever holds a reference — an
// index into the registry plus a plain-data capture map — never the
// function value. The same binary runs on the server (to build the table)
// and in the wasm client (to resolve it), so Register's name is simply
// looked up again; no cross-language bridge is needed.
package resumable
