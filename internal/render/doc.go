// Package render prints result relations as aligned text tables.
//
// Integer cells are grouped per locale (221,900 reads as a price;
// 221900 does not). NULL renders as an empty cell.
package render
