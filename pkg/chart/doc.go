// Package chart describes Plotly-compatible figures as plain Go values and
// ships preset constructors with consistent embed-friendly styling. Nothing
// here renders; figures become JSON payloads bootstrapped by the document
// templates in the browser.
package chart
