// Package broken holds annotated types the analyzer must reject.
package broken

//constgen:derive sideways
type BadOption struct {
	A int
}

//constgen:frobnicate
type Unknown struct {
	A int
}

//constgen:derive
type Count int

//constgen:enum
type NotIface struct{}

//constgen:derive
type Pipe struct {
	C chan int
}

//constgen:derive unit
type Crowded struct {
	A int
}

//constgen:enum
type Left interface{ side() }

//constgen:enum
type Right interface{ side() }

//constgen:variant
type Both struct{}

//constgen:variant enum=Left
type Chosen struct{}

//constgen:enum
type Lonely interface{ lonely() }

//constgen:variant
type Stray struct{}

//constgen:variant enum=Lonely
type Pointed struct{}

//constgen:variant enum=Lonley
type Typo struct{}

//constgen:derive
type Reflexive struct {
	Self bool
}

//constgen:derive tuple
type Mirror struct {
	Self bool
}

//constgen:derive
type Sealed struct {
	secret int
}

//constgen:derive
type Keyed struct {
	Type uint8
	Loop bool `const:"match"`
}

func (Both) side()       {}
func (Chosen) side()     {}
func (*Pointed) lonely() {}
