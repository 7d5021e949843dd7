// Package script locates and reads plot scripts.
//
// A plot script is a small line-oriented text file naming the circuit to draw
// and whether every object should be drawn in detail:
//
//	circuit_path "adaptec1"
//	plot_all_detail Yes
//
// The circuit name resolves to a Bookshelf node file and a placement solution
// under a root directory (./test by default):
//
//	./test/adaptec1/adaptec1.nodes
//	./test/adaptec1/adaptec1_solution.pl
//
// Lines are matched by substring, so surrounding text is allowed. A
// circuit_path line containing a slash anywhere is ignored. When several
// lines match, the last one wins. A plot_all_detail line turns detail mode on
// and nothing turns it back off.
package script
