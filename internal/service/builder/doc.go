// Package builder runs the addon build: it loads the settings and the
// descriptor, concatenates the script sources, assembles the definition,
// embeds the icon when one exists and writes <output>/<name>.xml.
//
// Every failure is fatal except icon processing, which is logged and
// leaves the definition without an icon.
package builder
