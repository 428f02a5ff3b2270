// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package hclsource loads executables from `.sl.hcl` files.
//
// A source file declares exactly one operation or flow. The leading `#!!`
// comment block is lexed by the metadata package and becomes the description
// of the executable.
//
//	#!!
//	#! @description: Greets everyone in a list.
//	#! @input names: the people to greet
//	#!!#
//	namespace = "io.demo"
//	imports   = { base = "io.demo.base" }
//
//	flow "greet_all" {
//	  input "names" {}
//
//	  task "greet" {
//	    do = "base.print"
//	    loop {
//	      var   = "name"
//	      items = inputs.names
//	    }
//	    argument "text" { value = "Hello, ${name}" }
//	    navigate {
//	      SUCCESS = SUCCESS
//	      FAILURE = FAILURE
//	    }
//	  }
//	}
//
// Binding values are kept as unevaluated expressions. Constant expressions
// are folded into native values.
package hclsource
