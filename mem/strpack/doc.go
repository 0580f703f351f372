// Package strpack packs string lists into single blocks and concatenates
// strings into NUL-terminated buffers.
//
// # Packed blocks
//
// Pack lays out n strings in one allocation so the whole list can be released
// with a single Free:
//
//	+---------+---------+-----+---------+------------+------------+-----+
//	| slot 0  | slot 1  | ... | slot n  | str 0 \x00 | str 1 \x00 | ... |
//	+---------+---------+-----+---------+------------+------------+-----+
//	 8 bytes each, little-endian offsets   string bytes, in input order
//	 from the start of the block;
//	 slot n is always 0
//
// Slots hold offsets instead of addresses because a block may live in memory
// the Go runtime does not scan (see alloc.Mmap). The block size is exactly
// (n+1)*SlotSize plus the length of every string plus one NUL each.
//
// # Concatenation
//
// Append grows a NUL-terminated buffer to hold its current contents followed
// by every argument, reallocating only when the tracked capacity is too small.
package strpack
