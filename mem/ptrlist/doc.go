// Package ptrlist manages an owned, nil-terminated list of pointers.
//
// The list keeps an explicit count, so nothing ever scans for the sentinel,
// but the slot after the last item is always nil. Slots can therefore be
// handed, sentinel included, to code that walks until it sees nil.
//
// Ownership: items appended to a List belong to it. DestroyAll and
// RemoveAndDestroy hand items to the list's release function; Remove gives an
// item back to the caller without releasing it.
//
// Lists are not safe for concurrent use.
package ptrlist
