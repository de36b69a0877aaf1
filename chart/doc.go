// Package chart samples a function over its bisection bracket and renders
// the curve together with the bracket endpoints and the computed root.
//
// Sample produces plain data and never touches a render target. The
// renderers write to an io.Writer chosen by the caller:
//
//   - RenderHTML draws an interactive go-echarts page.
//   - RenderImage draws a static PNG or SVG with gonum/plot.
package chart
