package clamped_test

import (
	"fmt"

	"github.com/alextanhongpin/clamped"
)

// Example: Construction clamps out-of-range starting values
func ExampleNew() {
	v := clamped.New(0, 5, 10)
	fmt.Println(v.Value())

	v = clamped.New(0, 15, 10)
	fmt.Println(v.Value())

	// Output:
	// 5
	// 10
}

// Example: Setting a value never fails, it clamps
func ExampleValue_Set() {
	v := clamped.New(0, 5, 10)

	v.Set(7)
	fmt.Println(v.Value())

	v.Set(100)
	fmt.Println(v.Value())

	v.Set(-100)
	fmt.Println(v.Value())

	// Output:
	// 7
	// 10
	// 0
}

// Example: Arithmetic saturates at the bounds
func ExampleValue_Add() {
	v := clamped.New(0, 5, 10)

	v.Add(3)
	fmt.Println(v.Value())

	v.Add(20)
	fmt.Println(v.Value())

	v.Sub(100)
	fmt.Println(v.Value())

	// Output:
	// 8
	// 10
	// 0
}

func ExampleValue_Percent() {
	v := clamped.New[uint8](50, 75, 100)
	fmt.Println(v.Percent())

	// Output:
	// 0.5
}

// Real-world example: player health that cannot leave [0, max]
func ExampleValue_healthBar() {
	hp := clamped.New(0, 100, 100)

	hp.Sub(30)
	fmt.Printf("after hit: %s (%.0f%%)\n", hp, hp.Percent()*100)

	hp.Sub(1000) // overkill damage still bottoms out at zero
	fmt.Printf("down: %s\n", hp)

	hp.Add(25)
	fmt.Printf("healed: %s\n", hp)

	hp.Add(1000) // overheal caps at full
	fmt.Printf("full: %s\n", hp)

	// Output:
	// after hit: 70 [0, 100] (70%)
	// down: 0 [0, 100]
	// healed: 25 [0, 100]
	// full: 100 [0, 100]
}

// Real-world example: audio gain in dB with a hard ceiling
func ExampleValue_gain() {
	gain := clamped.New(-60.0, -15.0, 0.0)

	gain.Add(10)
	fmt.Println(gain.Value())

	gain.Add(10) // would exceed 0 dB, clamped
	fmt.Println(gain.Value())

	gain.Mul(4) // 0 * 4 is still 0
	fmt.Println(gain.Value())

	gain.Sub(1000)
	fmt.Println(gain.Value())

	// Output:
	// -5
	// 0
	// 0
	// -60
}
