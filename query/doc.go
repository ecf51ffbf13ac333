// Package query provides async data loading and management for PhilJS applications.
//
// Resources are reactive primitives that handle the complete lifecycle of asynchronous
// data fetching, including:
//
//   - Loading, Error, and Success states
//   - Automatic dependency tracking and re-fetching
//   - Caching and stale time management
//   - Optimistic updates and mutations
//   - Pattern matching for UI rendering
//
// Basic Usage:
//
//	user := query.New(func() (*User, error) {
//	    return db.Users.Find(id)
//	})
//
//	return user.Match(
//	    query.OnLoading[*User](func() *vnode.VNode { return Loading() }),
//	    query.OnError[*User](func(err error) *vnode.VNode { return Error(err) }),
//	    query.OnReady(func(u *User) *vnode.VNode { return UserProfile(u) }),
//	)
package query
