// seehuhn.de/go/achroma - ICC profile data model
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package icc

// ProfileClass is the ICC profile or device class.
type ProfileClass uint32

// Profile classes defined by ICC.1.
const (
	InputDeviceProfile   ProfileClass = 0x73636E72 // "scnr"
	DisplayDeviceProfile ProfileClass = 0x6D6E7472 // "mntr"
	OutputDeviceProfile  ProfileClass = 0x70727472 // "prtr"

	ColorSpaceProfile ProfileClass = 0x73706163 // "spac"
	DeviceLinkProfile ProfileClass = 0x6C696E6B // "link"
	AbstractProfile   ProfileClass = 0x61627374 // "abst"
	NamedColorProfile ProfileClass = 0x6E6D636C // "nmcl"
)

var profileClasses = newEnumTable("ProfileClass",
	enumEntry[ProfileClass]{InputDeviceProfile, "scnr", "Input Device Profile"},
	enumEntry[ProfileClass]{DisplayDeviceProfile, "mntr", "Display Device Profile"},
	enumEntry[ProfileClass]{OutputDeviceProfile, "prtr", "Output Device Profile"},
	enumEntry[ProfileClass]{ColorSpaceProfile, "spac", "ColorSpace Profile"},
	enumEntry[ProfileClass]{DeviceLinkProfile, "link", "DeviceLink Profile"},
	enumEntry[ProfileClass]{AbstractProfile, "abst", "Abstract Profile"},
	enumEntry[ProfileClass]{NamedColorProfile, "nmcl", "Named Color Profile"},
)

// ParseProfileClass returns the profile class with the given
// four-character signature.
func ParseProfileClass(s string) (ProfileClass, error) { return profileClasses.parse(s) }

// ProfileClassFromCode checks that c is a known profile class.
func ProfileClassFromCode(c uint32) (ProfileClass, error) { return profileClasses.fromCode(c) }

func (c ProfileClass) String() string { return profileClasses.name(c) }

// Text returns the four-character signature of c.
func (c ProfileClass) Text() string { return profileClasses.text(c) }

// ColorSpace identifies a colour space in an ICC profile.
type ColorSpace uint32

// Colour spaces defined by ICC.1.
const (
	CIEXYZSpace  ColorSpace = 0x58595A20 // "XYZ "
	CIELabSpace  ColorSpace = 0x4C616220 // "Lab "
	CIELuvSpace  ColorSpace = 0x4C757620 // "Luv "
	YCbCrSpace   ColorSpace = 0x59436272 // "YCbr"
	CIEYxySpace  ColorSpace = 0x59787920 // "Yxy "
	RGBSpace     ColorSpace = 0x52474220 // "RGB "
	GraySpace    ColorSpace = 0x47524159 // "GRAY"
	HSVSpace     ColorSpace = 0x48535620 // "HSV "
	HLSSpace     ColorSpace = 0x484C5320 // "HLS "
	CMYKSpace    ColorSpace = 0x434D594B // "CMYK"
	CMYSpace     ColorSpace = 0x434D5920 // "CMY "
	Color2Space  ColorSpace = 0x32434C52 // "2CLR"
	Color3Space  ColorSpace = 0x33434C52 // "3CLR"
	Color4Space  ColorSpace = 0x34434C52 // "4CLR"
	Color5Space  ColorSpace = 0x35434C52 // "5CLR"
	Color6Space  ColorSpace = 0x36434C52 // "6CLR"
	Color7Space  ColorSpace = 0x37434C52 // "7CLR"
	Color8Space  ColorSpace = 0x38434C52 // "8CLR"
	Color9Space  ColorSpace = 0x39434C52 // "9CLR"
	Color10Space ColorSpace = 0x41434C52 // "ACLR"
	Color11Space ColorSpace = 0x42434C52 // "BCLR"
	Color12Space ColorSpace = 0x43434C52 // "CCLR"
	Color13Space ColorSpace = 0x44434C52 // "DCLR"
	Color14Space ColorSpace = 0x45434C52 // "ECLR"
	Color15Space ColorSpace = 0x46434C52 // "FCLR"

	PCSXYZSpace = CIEXYZSpace
	PCSLabSpace = CIELabSpace
)

var colorSpaces = newEnumTable("ColorSpace",
	enumEntry[ColorSpace]{CIEXYZSpace, "XYZ ", "CIEXYZ"},
	enumEntry[ColorSpace]{CIELabSpace, "Lab ", "CIELAB"},
	enumEntry[ColorSpace]{CIELuvSpace, "Luv ", "CIELUV"},
	enumEntry[ColorSpace]{YCbCrSpace, "YCbr", "YCbCr"},
	enumEntry[ColorSpace]{CIEYxySpace, "Yxy ", "CIEYxy"},
	enumEntry[ColorSpace]{RGBSpace, "RGB ", "RGB"},
	enumEntry[ColorSpace]{GraySpace, "GRAY", "Gray"},
	enumEntry[ColorSpace]{HSVSpace, "HSV ", "HSV"},
	enumEntry[ColorSpace]{HLSSpace, "HLS ", "HLS"},
	enumEntry[ColorSpace]{CMYKSpace, "CMYK", "CMYK"},
	enumEntry[ColorSpace]{CMYSpace, "CMY ", "CMY"},
	enumEntry[ColorSpace]{Color2Space, "2CLR", "2CLR"},
	enumEntry[ColorSpace]{Color3Space, "3CLR", "3CLR"},
	enumEntry[ColorSpace]{Color4Space, "4CLR", "4CLR"},
	enumEntry[ColorSpace]{Color5Space, "5CLR", "5CLR"},
	enumEntry[ColorSpace]{Color6Space, "6CLR", "6CLR"},
	enumEntry[ColorSpace]{Color7Space, "7CLR", "7CLR"},
	enumEntry[ColorSpace]{Color8Space, "8CLR", "8CLR"},
	enumEntry[ColorSpace]{Color9Space, "9CLR", "9CLR"},
	enumEntry[ColorSpace]{Color10Space, "ACLR", "10CLR"},
	enumEntry[ColorSpace]{Color11Space, "BCLR", "11CLR"},
	enumEntry[ColorSpace]{Color12Space, "CCLR", "12CLR"},
	enumEntry[ColorSpace]{Color13Space, "DCLR", "13CLR"},
	enumEntry[ColorSpace]{Color14Space, "ECLR", "14CLR"},
	enumEntry[ColorSpace]{Color15Space, "FCLR", "15CLR"},
)

// ParseColorSpace returns the colour space with the given four-character
// signature.
func ParseColorSpace(s string) (ColorSpace, error) { return colorSpaces.parse(s) }

// ColorSpaceFromCode checks that c is a known colour space.
func ColorSpaceFromCode(c uint32) (ColorSpace, error) { return colorSpaces.fromCode(c) }

func (s ColorSpace) String() string { return colorSpaces.name(s) }

// Text returns the four-character signature of s.
func (s ColorSpace) Text() string { return colorSpaces.text(s) }

// NumComponents returns the number of color components in the color space.
func (s ColorSpace) NumComponents() int {
	switch s {
	case GraySpace:
		return 1
	case Color2Space:
		return 2
	case CIEXYZSpace, CIELabSpace, CIELuvSpace, YCbCrSpace, CIEYxySpace,
		RGBSpace, HSVSpace, HLSSpace, CMYSpace, Color3Space:
		return 3
	case CMYKSpace, Color4Space:
		return 4
	case Color5Space, Color6Space, Color7Space, Color8Space, Color9Space:
		return int(s>>24) - '0'
	case Color10Space, Color11Space, Color12Space, Color13Space, Color14Space, Color15Space:
		return int(s>>24) - 'A' + 10
	default:
		return 0 // unknown
	}
}

// RenderingIntent specifies how colours outside the destination gamut are handled.
type RenderingIntent uint32

// Standard ICC rendering intents.
const (
	Perceptual           RenderingIntent = 0 // preserves visual relationships between colours
	RelativeColorimetric RenderingIntent = 1 // maps white point, preserves in-gamut colours
	Saturation           RenderingIntent = 2 // preserves saturation, may shift hue
	AbsoluteColorimetric RenderingIntent = 3 // preserves exact colorimetric values
)

var renderingIntents = newEnumTable("RenderingIntent",
	enumEntry[RenderingIntent]{Perceptual, "Perceptual", "Perceptual"},
	enumEntry[RenderingIntent]{RelativeColorimetric, "Relative Colorimetric", "Relative Colorimetric"},
	enumEntry[RenderingIntent]{Saturation, "Saturation", "Saturation"},
	enumEntry[RenderingIntent]{AbsoluteColorimetric, "Absolute Colorimetric", "Absolute Colorimetric"},
)

// ParseRenderingIntent returns the rendering intent with the given name,
// for example "Relative Colorimetric".
func ParseRenderingIntent(s string) (RenderingIntent, error) { return renderingIntents.parse(s) }

// RenderingIntentFromCode checks that c is a known rendering intent.
func RenderingIntentFromCode(c uint32) (RenderingIntent, error) {
	return renderingIntents.fromCode(c)
}

func (ri RenderingIntent) String() string { return renderingIntents.name(ri) }

// Text returns the short name of ri, as accepted by [ParseRenderingIntent].
func (ri RenderingIntent) Text() string { return renderingIntents.text(ri) }

// Technology is the device technology recorded in a 'tech' tag.
type Technology uint32

// Technology signatures, from table 29 of ICC.1:2022.
const (
	FilmScanner                Technology = 0x6673636E // "fscn"
	DigitalCamera              Technology = 0x6463616D // "dcam"
	ReflectiveScanner          Technology = 0x7273636E // "rscn"
	InkJetPrinter              Technology = 0x696A6574 // "ijet"
	ThermalWaxPrinter          Technology = 0x74776178 // "twax"
	ElectrophotographicPrinter Technology = 0x6570686F // "epho"
	ElectrostaticPrinter       Technology = 0x65737461 // "esta"
	DyeSublimationPrinter      Technology = 0x64737562 // "dsub"
	PhotographicPaperPrinter   Technology = 0x7270686F // "rpho"
	FilmWriter                 Technology = 0x6670726E // "fprn"
	VideoMonitor               Technology = 0x7669646D // "vidm"
	VideoCamera                Technology = 0x76696463 // "vidc"
	ProjectionTelevision       Technology = 0x706A7476 // "pjtv"
	CathodeRayTubeDisplay      Technology = 0x43525420 // "CRT "
	PassiveMatrixDisplay       Technology = 0x504D4420 // "PMD "
	ActiveMatrixDisplay        Technology = 0x414D4420 // "AMD "
	OrganicLEDDisplay          Technology = 0x4F4C4544 // "OLED"
	PhotoCD                    Technology = 0x4B504344 // "KPCD"
	PhotographicImageSetter    Technology = 0x696D6773 // "imgs"
	Gravure                    Technology = 0x67726176 // "grav"
	OffsetLithography          Technology = 0x6F666673 // "offs"
	Silkscreen                 Technology = 0x73696C6B // "silk"
	Flexography                Technology = 0x666C6578 // "flex"
	MotionPictureFilmScanner   Technology = 0x6D706673 // "mpfs"
	MotionPictureFilmRecorder  Technology = 0x6D706672 // "mpfr"
	DigitalMotionPictureCamera Technology = 0x646D7063 // "dmpc"
	DigitalCinemaProjector     Technology = 0x6463706A // "dcpj"
)

var technologies = newEnumTable("Technology",
	enumEntry[Technology]{FilmScanner, "fscn", "Film Scanner"},
	enumEntry[Technology]{DigitalCamera, "dcam", "Digital Camera"},
	enumEntry[Technology]{ReflectiveScanner, "rscn", "Reflective Scanner"},
	enumEntry[Technology]{InkJetPrinter, "ijet", "Ink Jet Printer"},
	enumEntry[Technology]{ThermalWaxPrinter, "twax", "Thermal Wax Printer"},
	enumEntry[Technology]{ElectrophotographicPrinter, "epho", "Electrophotographic Printer"},
	enumEntry[Technology]{ElectrostaticPrinter, "esta", "Electrostatic Printer"},
	enumEntry[Technology]{DyeSublimationPrinter, "dsub", "Dye Sublimation Printer"},
	enumEntry[Technology]{PhotographicPaperPrinter, "rpho", "Photographic Paper Printer"},
	enumEntry[Technology]{FilmWriter, "fprn", "Film Writer"},
	enumEntry[Technology]{VideoMonitor, "vidm", "Video Monitor"},
	enumEntry[Technology]{VideoCamera, "vidc", "Video Camera"},
	enumEntry[Technology]{ProjectionTelevision, "pjtv", "Projection Television"},
	enumEntry[Technology]{CathodeRayTubeDisplay, "CRT ", "Cathode Ray Tube Display"},
	enumEntry[Technology]{PassiveMatrixDisplay, "PMD ", "Passive Matrix Display"},
	enumEntry[Technology]{ActiveMatrixDisplay, "AMD ", "Active Matrix Display"},
	enumEntry[Technology]{OrganicLEDDisplay, "OLED", "Organic LED Display"},
	enumEntry[Technology]{PhotoCD, "KPCD", "Photo CD"},
	enumEntry[Technology]{PhotographicImageSetter, "imgs", "Photographic Image Setter"},
	enumEntry[Technology]{Gravure, "grav", "Gravure"},
	enumEntry[Technology]{OffsetLithography, "offs", "Offset Lithography"},
	enumEntry[Technology]{Silkscreen, "silk", "Silkscreen"},
	enumEntry[Technology]{Flexography, "flex", "Flexography"},
	enumEntry[Technology]{MotionPictureFilmScanner, "mpfs", "Motion Picture Film Scanner"},
	enumEntry[Technology]{MotionPictureFilmRecorder, "mpfr", "Motion Picture Film Recorder"},
	enumEntry[Technology]{DigitalMotionPictureCamera, "dmpc", "Digital Motion Picture Camera"},
	enumEntry[Technology]{DigitalCinemaProjector, "dcpj", "Digital Cinema Projector"},
)

// ParseTechnology returns the technology with the given four-character
// signature.
func ParseTechnology(s string) (Technology, error) { return technologies.parse(s) }

// TechnologyFromCode checks that c is a known technology signature.
func TechnologyFromCode(c uint32) (Technology, error) { return technologies.fromCode(c) }

func (t Technology) String() string { return technologies.name(t) }

// Text returns the four-character signature of t.
func (t Technology) Text() string { return technologies.text(t) }

// CurveMeasurement identifies the measurement standard of a response
// curve in a 'rcs2' record.
type CurveMeasurement uint32

// Measurement signatures, from table 52 of ICC.1:2022.
const (
	StatusA            CurveMeasurement = 0x53746141 // "StaA"
	StatusE            CurveMeasurement = 0x53746145 // "StaE"
	StatusI            CurveMeasurement = 0x53746149 // "StaI"
	StatusT            CurveMeasurement = 0x53746154 // "StaT"
	StatusM            CurveMeasurement = 0x5374614D // "StaM"
	DIN                CurveMeasurement = 0x444E2020 // "DN  "
	DINPolarized       CurveMeasurement = 0x444E2050 // "DN P"
	DINNarrow          CurveMeasurement = 0x444E4E20 // "DNN "
	DINNarrowPolarized CurveMeasurement = 0x444E4E50 // "DNNP"
)

var curveMeasurements = newEnumTable("CurveMeasurement",
	enumEntry[CurveMeasurement]{StatusA, "StaA", "ISO 5-3 Status A"},
	enumEntry[CurveMeasurement]{StatusE, "StaE", "ISO 5-3 Status E"},
	enumEntry[CurveMeasurement]{StatusI, "StaI", "ISO 5-3 Status I"},
	enumEntry[CurveMeasurement]{StatusT, "StaT", "ISO 5-3 Status T"},
	enumEntry[CurveMeasurement]{StatusM, "StaM", "ISO 5-3 Status M"},
	enumEntry[CurveMeasurement]{DIN, "DN  ", "DIN E"},
	enumEntry[CurveMeasurement]{DINPolarized, "DN P", "DIN E with polarizing filter"},
	enumEntry[CurveMeasurement]{DINNarrow, "DNN ", "DIN I"},
	enumEntry[CurveMeasurement]{DINNarrowPolarized, "DNNP", "DIN I with polarizing filter"},
)

// ParseCurveMeasurement returns the measurement standard with the given
// four-character signature.
func ParseCurveMeasurement(s string) (CurveMeasurement, error) { return curveMeasurements.parse(s) }

// CurveMeasurementFromCode checks that c is a known measurement signature.
func CurveMeasurementFromCode(c uint32) (CurveMeasurement, error) {
	return curveMeasurements.fromCode(c)
}

func (m CurveMeasurement) String() string { return curveMeasurements.name(m) }

// Text returns the four-character signature of m.
func (m CurveMeasurement) Text() string { return curveMeasurements.text(m) }

// ImageState is the colorimetric intent image state stored in a 'ciis' tag.
type ImageState uint32

// Image state signatures, from table 30 of ICC.1:2022.
const (
	SceneColorimetryEstimates        ImageState = 0x73636F65 // "scoe"
	SceneAppearanceEstimates         ImageState = 0x73617065 // "sape"
	FocalPlaneColorimetryEstimates   ImageState = 0x66706365 // "fpce"
	ReflectionHardcopyOriginal       ImageState = 0x72686F63 // "rhoc"
	ReflectionPrintOutputColorimetry ImageState = 0x72706F63 // "rpoc"
)

var imageStates = newEnumTable("ImageState",
	enumEntry[ImageState]{SceneColorimetryEstimates, "scoe", "Scene colorimetry estimates"},
	enumEntry[ImageState]{SceneAppearanceEstimates, "sape", "Scene appearance estimates"},
	enumEntry[ImageState]{FocalPlaneColorimetryEstimates, "fpce", "Focal plane colorimetry estimates"},
	enumEntry[ImageState]{ReflectionHardcopyOriginal, "rhoc", "Reflection hardcopy original colorimetry"},
	enumEntry[ImageState]{ReflectionPrintOutputColorimetry, "rpoc", "Reflection print output colorimetry"},
)

// ParseImageState returns the image state with the given four-character
// signature.
func ParseImageState(s string) (ImageState, error) { return imageStates.parse(s) }

// ImageStateFromCode checks that c is a known image state.
func ImageStateFromCode(c uint32) (ImageState, error) { return imageStates.fromCode(c) }

func (s ImageState) String() string { return imageStates.name(s) }

// Text returns the four-character signature of s.
func (s ImageState) Text() string { return imageStates.text(s) }

// Platform is the primary platform recorded in the profile header.
type Platform uint32

// Platform signatures, from table 20 of ICC.1:2022.
const (
	PlatformApple     Platform = 0x4150504C // "APPL"
	PlatformMicrosoft Platform = 0x4D534654 // "MSFT"
	PlatformSGI       Platform = 0x53474920 // "SGI "
	PlatformSun       Platform = 0x53554E57 // "SUNW"
)

var platforms = newEnumTable("Platform",
	enumEntry[Platform]{PlatformApple, "APPL", "Apple Computer, Inc."},
	enumEntry[Platform]{PlatformMicrosoft, "MSFT", "Microsoft Corporation"},
	enumEntry[Platform]{PlatformSGI, "SGI ", "Silicon Graphics, Inc."},
	enumEntry[Platform]{PlatformSun, "SUNW", "Sun Microsystems, Inc."},
)

// ParsePlatform returns the platform with the given four-character
// signature.
func ParsePlatform(s string) (Platform, error) { return platforms.parse(s) }

// PlatformFromCode checks that c is a known platform.  The value 0,
// meaning that no platform is given, is not a member of the enumeration.
func PlatformFromCode(c uint32) (Platform, error) { return platforms.fromCode(c) }

func (p Platform) String() string {
	if p == 0 {
		return "none"
	}
	return platforms.name(p)
}

// Text returns the four-character signature of p.
func (p Platform) Text() string { return platforms.text(p) }

// StandardObserver is the observer field of a 'meas' record.
type StandardObserver uint32

// Standard observers, from table 50 of ICC.1:2022.
const (
	ObserverUnknown StandardObserver = 0
	ObserverCIE1931 StandardObserver = 1
	ObserverCIE1964 StandardObserver = 2
)

var observers = newEnumTable("StandardObserver",
	enumEntry[StandardObserver]{ObserverUnknown, "Unknown", "Unknown"},
	enumEntry[StandardObserver]{ObserverCIE1931, "CIE 1931", "CIE 1931 standard colorimetric observer"},
	enumEntry[StandardObserver]{ObserverCIE1964, "CIE 1964", "CIE 1964 standard colorimetric observer"},
)

// ParseStandardObserver returns the observer with the given name, for
// example "CIE 1931".
func ParseStandardObserver(s string) (StandardObserver, error) { return observers.parse(s) }

// StandardObserverFromCode checks that c is a known observer.
func StandardObserverFromCode(c uint32) (StandardObserver, error) { return observers.fromCode(c) }

func (o StandardObserver) String() string { return observers.name(o) }

// Text returns the short name of o, as accepted by [ParseStandardObserver].
func (o StandardObserver) Text() string { return observers.text(o) }

// MeasurementGeometry is the geometry field of a 'meas' record.
type MeasurementGeometry uint32

// Measurement geometries, from table 51 of ICC.1:2022.
const (
	GeometryUnknown MeasurementGeometry = 0
	Geometry0_45    MeasurementGeometry = 1 // 0°:45° or 45°:0°
	Geometry0_d     MeasurementGeometry = 2 // 0°:d or d:0°
)

var geometries = newEnumTable("MeasurementGeometry",
	enumEntry[MeasurementGeometry]{GeometryUnknown, "Unknown", "Unknown"},
	enumEntry[MeasurementGeometry]{Geometry0_45, "0/45", "0°:45° or 45°:0°"},
	enumEntry[MeasurementGeometry]{Geometry0_d, "0/d", "0°:d or d:0°"},
)

// ParseMeasurementGeometry returns the geometry with the given name, for
// example "0/45".
func ParseMeasurementGeometry(s string) (MeasurementGeometry, error) { return geometries.parse(s) }

// MeasurementGeometryFromCode checks that c is a known geometry.
func MeasurementGeometryFromCode(c uint32) (MeasurementGeometry, error) {
	return geometries.fromCode(c)
}

func (g MeasurementGeometry) String() string { return geometries.name(g) }

// Text returns the short name of g, as accepted by [ParseMeasurementGeometry].
func (g MeasurementGeometry) Text() string { return geometries.text(g) }

// StandardIlluminant is the illuminant field of 'meas' and 'view' records.
type StandardIlluminant uint32

// Standard illuminants, from table 53 of ICC.1:2022.
const (
	IlluminantUnknown StandardIlluminant = 0
	IlluminantD50     StandardIlluminant = 1
	IlluminantD65     StandardIlluminant = 2
	IlluminantD93     StandardIlluminant = 3
	IlluminantF2      StandardIlluminant = 4
	IlluminantD55     StandardIlluminant = 5
	IlluminantA       StandardIlluminant = 6
	IlluminantE       StandardIlluminant = 7 // equi-power
	IlluminantF8      StandardIlluminant = 8
)

var illuminants = newEnumTable("StandardIlluminant",
	enumEntry[StandardIlluminant]{IlluminantUnknown, "Unknown", "Unknown"},
	enumEntry[StandardIlluminant]{IlluminantD50, "D50", "D50"},
	enumEntry[StandardIlluminant]{IlluminantD65, "D65", "D65"},
	enumEntry[StandardIlluminant]{IlluminantD93, "D93", "D93"},
	enumEntry[StandardIlluminant]{IlluminantF2, "F2", "F2"},
	enumEntry[StandardIlluminant]{IlluminantD55, "D55", "D55"},
	enumEntry[StandardIlluminant]{IlluminantA, "A", "A"},
	enumEntry[StandardIlluminant]{IlluminantE, "E", "Equi-Power (E)"},
	enumEntry[StandardIlluminant]{IlluminantF8, "F8", "F8"},
)

// ParseStandardIlluminant returns the illuminant with the given name, for
// example "D65".
func ParseStandardIlluminant(s string) (StandardIlluminant, error) { return illuminants.parse(s) }

// StandardIlluminantFromCode checks that c is a known illuminant.
func StandardIlluminantFromCode(c uint32) (StandardIlluminant, error) {
	return illuminants.fromCode(c)
}

func (i StandardIlluminant) String() string { return illuminants.name(i) }

// Text returns the short name of i, as accepted by [ParseStandardIlluminant].
func (i StandardIlluminant) Text() string { return illuminants.text(i) }

// PhosphorColorant is the encoded colorant type of a 'chrm' record.
type PhosphorColorant uint16

// Phosphor or colorant types, from table 31 of ICC.1:2022.
const (
	ColorantUnknown PhosphorColorant = 0
	ColorantBT709   PhosphorColorant = 1 // ITU-R BT.709-2
	ColorantSMPTE   PhosphorColorant = 2 // SMPTE RP145
	ColorantEBU     PhosphorColorant = 3 // EBU Tech. 3213-E
	ColorantP22     PhosphorColorant = 4
)

var phosphorColorants = newEnumTable("PhosphorColorant",
	enumEntry[PhosphorColorant]{ColorantUnknown, "Unknown", "Unknown"},
	enumEntry[PhosphorColorant]{ColorantBT709, "ITU-R BT.709-2", "ITU-R BT.709-2"},
	enumEntry[PhosphorColorant]{ColorantSMPTE, "SMPTE RP145", "SMPTE RP145"},
	enumEntry[PhosphorColorant]{ColorantEBU, "EBU Tech. 3213-E", "EBU Tech. 3213-E"},
	enumEntry[PhosphorColorant]{ColorantP22, "P22", "P22"},
)

// ParsePhosphorColorant returns the colorant type with the given name.
func ParsePhosphorColorant(s string) (PhosphorColorant, error) { return phosphorColorants.parse(s) }

// PhosphorColorantFromCode checks that c is a known colorant type.
func PhosphorColorantFromCode(c uint32) (PhosphorColorant, error) {
	return phosphorColorants.fromCode(c)
}

func (c PhosphorColorant) String() string { return phosphorColorants.name(c) }

// Text returns the short name of c, as accepted by [ParsePhosphorColorant].
func (c PhosphorColorant) Text() string { return phosphorColorants.text(c) }
