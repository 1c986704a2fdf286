// Package codegen turns blueprint snapshots into ready-to-compile C#
// source for the game's scripting framework.
//
// The engine is synchronous and pure: each Generate* call is a function
// from one read-only blueprint value to source text, with no I/O and no
// state shared between calls. Generation for different blueprints may run
// concurrently without coordination.
package codegen

import "errors"

// ErrNilBlueprint is returned when a generator is handed a nil blueprint.
// That is a programming contract violation by the caller, not a content
// problem, so it fails fast instead of degrading.
var ErrNilBlueprint = errors.New("codegen: nil blueprint")

// emitHeader writes the auto-generated file banner.
func emitHeader(b *Builder, kind, title string) {
	b.Line("// <auto-generated>")
	b.Linef("//     %s '%s'. Regenerate from the editor instead of editing by hand.", kind, title)
	b.Line("// </auto-generated>")
	b.Blank()
}

// emitUsings writes the import block. The framework ships two flavors with
// different root namespaces, selected by the MONO compile flag, so the
// framework usings are split behind a preprocessor directive.
func emitUsings(b *Builder, frameworkArea string) {
	b.Line("using System;")
	b.Line("using System.Collections.Generic;")
	b.Blank()
	b.Directive("#if MONO")
	b.Linef("using ScheduleOne.%s;", frameworkArea)
	b.Line("using ScheduleOne.NPCs;")
	b.Directive("#else")
	b.Linef("using Il2CppScheduleOne.%s;", frameworkArea)
	b.Line("using Il2CppScheduleOne.NPCs;")
	b.Directive("#endif")
	b.Blank()
	b.Line("using MelonLoader;")
	b.Line("using UnityEngine;")
	b.Blank()
}
