// Package definition assembles and renders the service-task-definition XML
// consumed by the host platform.
//
// Child order of the root element is fixed by the field order of Document.
package definition
