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

// These are the tag signatures defined in ICC.1:2022, section 9.2.
const (
	AToB0Tag                          TagSignature = 0x41324230 // "A2B0"
	AToB1Tag                          TagSignature = 0x41324231 // "A2B1"
	AToB2Tag                          TagSignature = 0x41324232 // "A2B2"
	BlueMatrixColumnTag               TagSignature = 0x6258595A // "bXYZ"
	BlueTRCTag                        TagSignature = 0x62545243 // "bTRC"
	BToA0Tag                          TagSignature = 0x42324130 // "B2A0"
	BToA1Tag                          TagSignature = 0x42324131 // "B2A1"
	BToA2Tag                          TagSignature = 0x42324132 // "B2A2"
	BToD0Tag                          TagSignature = 0x42324430 // "B2D0"
	BToD1Tag                          TagSignature = 0x42324431 // "B2D1"
	BToD2Tag                          TagSignature = 0x42324432 // "B2D2"
	BToD3Tag                          TagSignature = 0x42324433 // "B2D3"
	CalibrationDateTimeTag            TagSignature = 0x63616C74 // "calt"
	CharTargetTag                     TagSignature = 0x74617267 // "targ"
	ChromaticAdaptationTag            TagSignature = 0x63686164 // "chad"
	ChromaticityTag                   TagSignature = 0x6368726D // "chrm"
	CICPTag                           TagSignature = 0x63696370 // "cicp"
	ColorantOrderTag                  TagSignature = 0x636C726F // "clro"
	ColorantTableTag                  TagSignature = 0x636C7274 // "clrt"
	ColorantTableOutTag               TagSignature = 0x636C6F74 // "clot"
	ColorimetricIntentImageStateTag   TagSignature = 0x63696973 // "ciis"
	CopyrightTag                      TagSignature = 0x63707274 // "cprt"
	DeviceMfgDescTag                  TagSignature = 0x646D6E64 // "dmnd"
	DeviceModelDescTag                TagSignature = 0x646D6464 // "dmdd"
	DToB0Tag                          TagSignature = 0x44324230 // "D2B0"
	DToB1Tag                          TagSignature = 0x44324231 // "D2B1"
	DToB2Tag                          TagSignature = 0x44324232 // "D2B2"
	DToB3Tag                          TagSignature = 0x44324233 // "D2B3"
	GamutTag                          TagSignature = 0x67616D74 // "gamt"
	GrayTRCTag                        TagSignature = 0x6B545243 // "kTRC"
	GreenMatrixColumnTag              TagSignature = 0x6758595A // "gXYZ"
	GreenTRCTag                       TagSignature = 0x67545243 // "gTRC"
	LuminanceTag                      TagSignature = 0x6C756D69 // "lumi"
	MeasurementTag                    TagSignature = 0x6D656173 // "meas"
	MediaBlackPointTag                TagSignature = 0x626B7074 // "bkpt"
	MediaWhitePointTag                TagSignature = 0x77747074 // "wtpt"
	NamedColor2Tag                    TagSignature = 0x6E636C32 // "ncl2"
	OutputResponseTag                 TagSignature = 0x72657370 // "resp"
	PerceptualRenderingIntentGamutTag TagSignature = 0x72696730 // "rig0"
	Preview0Tag                       TagSignature = 0x70726530 // "pre0"
	Preview1Tag                       TagSignature = 0x70726531 // "pre1"
	Preview2Tag                       TagSignature = 0x70726532 // "pre2"
	ProfileDescriptionTag             TagSignature = 0x64657363 // "desc"
	ProfileSequenceDescTag            TagSignature = 0x70736571 // "pseq"
	ProfileSequenceIdentifierTag      TagSignature = 0x70736964 // "psid"
	RedMatrixColumnTag                TagSignature = 0x7258595A // "rXYZ"
	RedTRCTag                         TagSignature = 0x72545243 // "rTRC"
	SaturationRenderingIntentGamutTag TagSignature = 0x72696732 // "rig2"
	TechnologyTag                     TagSignature = 0x74656368 // "tech"
	ViewingCondDescTag                TagSignature = 0x76756564 // "vued"
	ViewingConditionsTag              TagSignature = 0x76696577 // "view"
	MetadataTag                       TagSignature = 0x6D657461 // "meta"
)

type tagDescriptor struct {
	name    string
	allowed []TypeSignature // nil means that any type is accepted
}

var (
	lutAToBTypes = []TypeSignature{Lut8Type, Lut16Type, LutAToBType}
	lutBToATypes = []TypeSignature{Lut8Type, Lut16Type, LutBToAType}
	lutAnyTypes  = []TypeSignature{Lut8Type, Lut16Type, LutAToBType, LutBToAType}
	trcTypes     = []TypeSignature{CurveType, ParametricCurveType}
	xyzTypes     = []TypeSignature{XYZType}
	descTypes    = []TypeSignature{MultiLocalizedUnicodeType, TextDescriptionType}
	mpetTypes    = []TypeSignature{MultiProcessElementsType}
	sigTypes     = []TypeSignature{SignatureType}
)

// tagInfo lists the record types which may be stored under each known tag.
// Version 2 types are included, so that older profiles can be edited.
var tagInfo = map[TagSignature]tagDescriptor{
	AToB0Tag:                          {"AToB0", lutAToBTypes},
	AToB1Tag:                          {"AToB1", lutAToBTypes},
	AToB2Tag:                          {"AToB2", lutAToBTypes},
	BlueMatrixColumnTag:               {"blueMatrixColumn", xyzTypes},
	BlueTRCTag:                        {"blueTRC", trcTypes},
	BToA0Tag:                          {"BToA0", lutBToATypes},
	BToA1Tag:                          {"BToA1", lutBToATypes},
	BToA2Tag:                          {"BToA2", lutBToATypes},
	BToD0Tag:                          {"BToD0", mpetTypes},
	BToD1Tag:                          {"BToD1", mpetTypes},
	BToD2Tag:                          {"BToD2", mpetTypes},
	BToD3Tag:                          {"BToD3", mpetTypes},
	CalibrationDateTimeTag:            {"calibrationDateTime", []TypeSignature{DateTimeType}},
	CharTargetTag:                     {"charTarget", []TypeSignature{TextType}},
	ChromaticAdaptationTag:            {"chromaticAdaptation", []TypeSignature{S15Fixed16ArrayType}},
	ChromaticityTag:                   {"chromaticity", []TypeSignature{ChromaticityType}},
	CICPTag:                           {"cicp", []TypeSignature{CICPType}},
	ColorantOrderTag:                  {"colorantOrder", []TypeSignature{ColorantOrderType}},
	ColorantTableTag:                  {"colorantTable", []TypeSignature{ColorantTableType}},
	ColorantTableOutTag:               {"colorantTableOut", []TypeSignature{ColorantTableType}},
	ColorimetricIntentImageStateTag:   {"colorimetricIntentImageState", sigTypes},
	CopyrightTag:                      {"copyright", []TypeSignature{MultiLocalizedUnicodeType, TextType}},
	DeviceMfgDescTag:                  {"deviceMfgDesc", descTypes},
	DeviceModelDescTag:                {"deviceModelDesc", descTypes},
	DToB0Tag:                          {"DToB0", mpetTypes},
	DToB1Tag:                          {"DToB1", mpetTypes},
	DToB2Tag:                          {"DToB2", mpetTypes},
	DToB3Tag:                          {"DToB3", mpetTypes},
	GamutTag:                          {"gamut", lutBToATypes},
	GrayTRCTag:                        {"grayTRC", trcTypes},
	GreenMatrixColumnTag:              {"greenMatrixColumn", xyzTypes},
	GreenTRCTag:                       {"greenTRC", trcTypes},
	LuminanceTag:                      {"luminance", xyzTypes},
	MeasurementTag:                    {"measurement", []TypeSignature{MeasurementType}},
	MediaBlackPointTag:                {"mediaBlackPoint", xyzTypes},
	MediaWhitePointTag:                {"mediaWhitePoint", xyzTypes},
	NamedColor2Tag:                    {"namedColor2", []TypeSignature{NamedColor2Type}},
	OutputResponseTag:                 {"outputResponse", []TypeSignature{ResponseCurveSet16Type}},
	PerceptualRenderingIntentGamutTag: {"perceptualRenderingIntentGamut", sigTypes},
	Preview0Tag:                       {"preview0", lutAnyTypes},
	Preview1Tag:                       {"preview1", lutBToATypes},
	Preview2Tag:                       {"preview2", lutBToATypes},
	ProfileDescriptionTag:             {"profileDescription", descTypes},
	ProfileSequenceDescTag:            {"profileSequenceDesc", []TypeSignature{ProfileSequenceDescType}},
	ProfileSequenceIdentifierTag:      {"profileSequenceIdentifier", []TypeSignature{ProfileSequenceIdentifierType}},
	RedMatrixColumnTag:                {"redMatrixColumn", xyzTypes},
	RedTRCTag:                         {"redTRC", trcTypes},
	SaturationRenderingIntentGamutTag: {"saturationRenderingIntentGamut", sigTypes},
	TechnologyTag:                     {"technology", sigTypes},
	ViewingCondDescTag:                {"viewingCondDesc", descTypes},
	ViewingConditionsTag:              {"viewingConditions", []TypeSignature{ViewingConditionsType}},
	MetadataTag:                       {"metadata", nil},
}

// AllowedTypes returns the record types which may be stored under the tag
// t.  The result is nil if t is not a known tag, or if any type is allowed.
func AllowedTypes(t TagSignature) []TypeSignature {
	info, ok := tagInfo[t]
	if !ok || info.allowed == nil {
		return nil
	}
	res := make([]TypeSignature, len(info.allowed))
	copy(res, info.allowed)
	return res
}

// checkTagType returns a TagTypeMismatchError if a record of type typ cannot
// be stored under the tag t.
func checkTagType(t TagSignature, typ TypeSignature) error {
	info, ok := tagInfo[t]
	if !ok || info.allowed == nil {
		return nil
	}
	for _, a := range info.allowed {
		if a == typ {
			return nil
		}
	}
	return &TagTypeMismatchError{Tag: t, Type: typ, Allowed: AllowedTypes(t)}
}
