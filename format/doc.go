// Package format renders numbers and matrices the way the reports show them.
// Non-finite values print as "N/A"; matrix cells with magnitude below 1e-10
// print as "0".
package format
