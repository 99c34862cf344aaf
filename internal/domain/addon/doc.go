// Package addon contains the domain model of a service-task addon descriptor.
//
// A descriptor is kept as an ordered Record so that locale variants such as
// "label-ja" are emitted in the order they were declared. Descriptor and
// ConfigParameter are typed views built from that record.
package addon
