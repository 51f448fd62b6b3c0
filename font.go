package twig

// FontKind selects one of the logical fonts a backend knows about.
type FontKind uint8

const (
	FontDefault FontKind = iota // backend's regular face
	FontButton                  // face used for button labels
	FontCustom                  // face registered by the application under Font.Name
)

// Font is an opaque font identifier. The core never loads fonts; a rendering
// backend maps every Font to a face.
type Font struct {
	Kind FontKind
	Name string // only used by FontCustom
}

// CustomFont returns the identifier of an application-registered font.
func CustomFont(name string) Font {
	return Font{Kind: FontCustom, Name: name}
}

// String returns a stable name usable as a lookup key.
func (f Font) String() string {
	switch f.Kind {
	case FontButton:
		return "button"
	case FontCustom:
		return "custom:" + f.Name
	default:
		return "default"
	}
}

// ImageKind selects one of the logical images a backend knows about.
type ImageKind uint8

const (
	ImageUnhoveredButton ImageKind = iota // button background at rest
	ImageHoveredButton                    // button background under the pointer
	ImageCustom                           // image registered by the application under Image.Name
)

// Image is an opaque texture identifier resolved by the rendering backend.
type Image struct {
	Kind ImageKind
	Name string // only used by ImageCustom
}

// CustomImage returns the identifier of an application-registered image.
func CustomImage(name string) Image {
	return Image{Kind: ImageCustom, Name: name}
}

// String returns a stable name usable as a lookup key.
func (i Image) String() string {
	switch i.Kind {
	case ImageHoveredButton:
		return "button-hovered"
	case ImageCustom:
		return "custom:" + i.Name
	default:
		return "button"
	}
}
