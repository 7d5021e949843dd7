// Package bookshelf reads placed circuits in a Bookshelf-style pair of files.
//
// # Node File
//
// The node (dimensions) file holds one shape per object. Header lines,
// comments and blank lines are skipped. A record is any line with an object
// field ("o" followed by digits), followed by numeric fields whose last two
// are width and height, optionally followed by a terminal marker:
//
//	UCLA nodes 1.0
//	NumNodes : 2
//		o0	8	12
//		o1	40	40	terminal
//
// # Placement File
//
// The placement file holds one position per object on lines starting with
// "o": identifier, lower-left x and y, then free-form fields of which one may
// contain FIXED:
//
//	o0	100	200	:	N
//	o1	0	0	:	N	/FIXED
//
// # Classification
//
// Both files are classified by the same rule, [Classify]: marked records are
// always terminals, unmarked records are terminals only in detail mode.
//
// Shapes and positions are matched by order, not by identifier: the n-th
// terminal shape belongs with the n-th terminal position, and likewise for
// cells. The two files must list objects in the same relative order.
package bookshelf
