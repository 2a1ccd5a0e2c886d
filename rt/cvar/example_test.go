package cvar_test

import (
	"fmt"

	"github.com/evan-idocoding/cvarkit/rt/cvar"
)

func Example_basic() {
	var v cvar.Var

	v.SetString("3.5")
	fmt.Println(v.Kind(), v.GetFloat(), v.GetInt(), v.GetBool())

	v.SetVec2(1, 2)
	fmt.Println(v.Kind(), v.GetVector(), v.GetString())

	// Output:
	// string 3.5 3 true
	// vec2 [1 2 0 0] 1.000000000 2.000000000
}

func ExampleVar_AddObserver() {
	v := cvar.New()
	sub := v.AddObserver(cvar.ObserverFunc(func(v *cvar.Var) {
		fmt.Println("changed:", v.Kind(), v.GetString())
	}))

	v.SetInt(1)
	v.SetInt(1) // same kind, same value: silent
	v.SetBool(true)

	sub.Unsubscribe()
	v.SetInt(2)

	// Output:
	// changed: int 1
	// changed: bool TRUE
}

func ExampleVar_GetBool_stringQuirk() {
	var v cvar.Var
	for _, s := range []string{"false", "FALSE", "no", "0", ""} {
		v.SetString(s)
		fmt.Printf("%q -> %v\n", s, v.GetBool())
	}

	// Output:
	// "false" -> false
	// "FALSE" -> false
	// "no" -> true
	// "0" -> true
	// "" -> true
}
