// Package suspicious provides lint rules for code that is likely incorrect
// or useless.
//
// Rules in this package:
//   - noDebugger: debugger statements
//   - noCompareNegZero: comparisons against -0
//   - noDoubleEquals: == and != instead of === and !==
//   - noConsoleLog: leftover console.log calls
//   - noDuplicateCase: repeated case labels in a switch
//   - noSelfCompare: comparing an expression to itself
package suspicious
