// Package engine is the compilation pipeline. It turns an element tree, or a
// block list produced some other way, into HCL text:
//
//	element tree -> element.Evaluate -> validate.Blocks -> printer -> text
//
// Every call gets its own ref.Registry, so renders never share handle state
// and need no reset between runs. A failed render returns no text at all.
package engine
