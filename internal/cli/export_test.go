package cli

// ModuleExt is an exported alias of [moduleExt] for testing.
var ModuleExt = moduleExt

// ExportModules is an exported alias of [exportModules] for testing.
var ExportModules = exportModules

// RenderResult is an exported alias of [renderResult] for testing.
var RenderResult = renderResult
