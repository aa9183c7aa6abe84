// Package render defines the drawing surface package layout targets
// (spec.md §6): a small Renderer interface of primitive draw/measure
// calls, an ExportingRenderer subtype that additionally persists what
// was drawn, and one concrete SVG implementation. The shape follows
// stacktower's pkg/render/tower/styles.Style — a narrow interface of
// Render* methods writing into a buffer — generalised from one fixed
// visual style into an arbitrary caller-supplied backend.
package render
