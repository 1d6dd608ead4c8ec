package primitive_test

import (
	"const-generator/primitive"
	"fmt"
	"reflect"
)

func Example() {
	type Celsius float32
	type Label string
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(uint8(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Celsius(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Label(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(primitive.Char('x'))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindU8
	// KindIsize
	// KindStr
	// KindF32
	// KindStr
	// KindChar
	// Kind(0)
}
