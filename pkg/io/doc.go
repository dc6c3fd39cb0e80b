// Package io writes class graphs to the reclass container format.
//
// # Overview
//
// A container is a zip archive holding exactly one entry, Data.xml. The entry
// is an XML document describing every class of a project, the nodes of each
// class in order, and the project's custom key/value data:
//
//	<?xml version="1.0" encoding="utf-8"?>
//	<!--reclass 0.4.0 by matzehuels-->
//	<!--Website: https://github.com/matzehuels/reclass-->
//	<reclass version="1" platform="x64">
//	  <classes>
//	    <class uuid="a6e4EJ2tEdGAtADAT9QwyA==" name="Player" comment="" address="">
//	      <node name="health" comment="" type="Int32Node"/>
//	      <node name="self" comment="" type="ClassPointerNode" reference="a6e4EJ2tEdGAtADAT9QwyA=="/>
//	    </class>
//	  </classes>
//	  <custom_data>
//	    <game>example</game>
//	  </custom_data>
//	</reclass>
//
// # Node Elements
//
// Every node element carries name, comment and type. Some node kinds add
// attributes of their own:
//
//   - reference nodes: reference (base64 ID of the target class)
//   - array nodes: count
//   - text nodes: length (the declared byte length)
//   - bit-field nodes: bits
//   - function nodes: reference (owning class, or the zero ID) and signature
//   - virtual method tables: one method child per method, with name and comment
//
// Node kinds outside package project are written by a [Converter] looked up
// in the [Options.Converters] registry. A converter's element is inserted
// verbatim. Nodes that neither a converter nor the built-in table can
// describe are skipped and reported to [Options.Logger] with one error and
// one warning entry; the rest of the graph is still written.
//
// # Writing
//
// Use [ExportProject] to save a project to a file path, [WriteProject] to
// write it to any io.Writer, or [WriteNodes] to write a loose node list:
//
//	err := io.ExportProject(p, "game.rcnet", io.Options{Logger: logger})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// [ExportProject] writes to a temporary file next to the destination and
// renames it into place only after the archive is complete, so a failed save
// leaves any previous file untouched.
//
// [WriteNodes] wraps nodes that are not classes in a class named
// SerialisationClass and pulls in every class reachable through reference
// nodes. A class already collected is never visited again, which makes
// self-references and reference cycles terminate.
//
// The whole document is built in memory before the first byte reaches the
// destination. Invalid input (a nil project, logger or node, or a reference
// node without a target) is rejected before any output is produced.
//
// # Reading
//
// [ReadDocument] and [OpenDocument] open a container and parse its Data.xml
// entry without rebuilding a project from it.
//
// # Concurrency
//
// Writers only read the graph; they never modify caller classes or nodes.
// They are safe to call concurrently with other readers of the same graph,
// but not with concurrent modifications to it.
package io
