package matroska

// Element ids, mechanically transcribed from the published Matroska
// element table (spec.md §6 "schema binding"/§9 "schema as data"). This
// file and the ElementDef table below are the one place the catalog is
// consulted by name; leaf/master types (elements_leaf.go,
// elements_master.go) bind these constants directly, the way the teacher's
// own ebml.go does, generalized to the full set of element groups spec.md
// names.
const (
	// Universal — legal inside any master (spec.md §3).
	IDCRC32 ID = 0xBF
	IDVoid  ID = 0xEC

	// EBML header.
	IDEBML                 ID = 0x1A45DFA3
	IDEBMLVersion          ID = 0x4286
	IDEBMLReadVersion      ID = 0x42F7
	IDEBMLMaxIDLength      ID = 0x42F2
	IDEBMLMaxSizeLength    ID = 0x42F3
	IDDocType              ID = 0x4282
	IDDocTypeVersion       ID = 0x4287
	IDDocTypeReadVersion   ID = 0x4285

	// Segment.
	IDSegment ID = 0x18538067

	// Meta Seek.
	IDSeekHead    ID = 0x114D9B74
	IDSeek        ID = 0x4DBB
	IDSeekID      ID = 0x53AB
	IDSeekPos     ID = 0x53AC

	// Segment information.
	IDInfo             ID = 0x1549A966
	IDSegmentUID       ID = 0x73A4
	IDSegmentFilename  ID = 0x7384
	IDPrevUID          ID = 0x3CB923
	IDPrevFilename     ID = 0x3C83AB
	IDNextUID          ID = 0x3EB923
	IDNextFilename     ID = 0x3E83BB
	IDTimestampScale   ID = 0x2AD7B1
	IDDuration         ID = 0x4489
	IDDateUTC          ID = 0x4461
	IDTitle            ID = 0x7BA9
	IDMuxingApp        ID = 0x4D80
	IDWritingApp       ID = 0x5741

	// Tracks.
	IDTracks               ID = 0x1654AE6B
	IDTrackEntry           ID = 0xAE
	IDTrackNumber          ID = 0xD7
	IDTrackUID             ID = 0x73C5
	IDTrackType            ID = 0x83
	IDFlagEnabled          ID = 0xB9
	IDFlagDefault          ID = 0x88
	IDFlagForced           ID = 0x55AA
	IDFlagLacing           ID = 0x9C
	IDTrackName            ID = 0x536E
	IDLanguage             ID = 0x22B59C
	IDCodecID              ID = 0x86
	IDCodecPrivate         ID = 0x63A2
	IDCodecName            ID = 0x258688
	IDVideo                ID = 0xE0
	IDAudio                ID = 0xE1
	IDContentEncodings     ID = 0x6D80

	// Video settings.
	IDFlagInterlaced ID = 0x9A
	IDPixelWidth     ID = 0xB0
	IDPixelHeight    ID = 0xBA
	IDDisplayWidth   ID = 0x54B0
	IDDisplayHeight  ID = 0x54BA

	// Audio settings.
	IDSamplingFrequency       ID = 0xB5
	IDOutputSamplingFrequency ID = 0x78B5
	IDChannels                ID = 0x9F
	IDBitDepth                ID = 0x6264

	// Content encoding (compression pipeline, domain stack §3).
	IDContentEncoding       ID = 0x6240
	IDContentEncodingOrder  ID = 0x5031
	IDContentEncodingScope  ID = 0x5032
	IDContentEncodingType   ID = 0x5033
	IDContentCompression    ID = 0x5034
	IDContentCompAlgo       ID = 0x4254
	IDContentCompSettings   ID = 0x4255

	// Cluster.
	IDCluster        ID = 0x1F43B675
	IDTimestamp      ID = 0xE7
	IDSimpleBlock    ID = 0xA3
	IDBlockGroup     ID = 0xA0
	IDBlock          ID = 0xA1
	IDBlockDuration  ID = 0x9B
	IDReferenceBlock ID = 0xFB

	// Cues.
	IDCues              ID = 0x1C53BB6B
	IDCuePoint          ID = 0xBB
	IDCueTime           ID = 0xB3
	IDCueTrackPositions ID = 0xB7
	IDCueTrack          ID = 0xF7
	IDCueClusterPos     ID = 0xF1

	// Attachments.
	IDAttachments     ID = 0x1941A469
	IDAttachedFile    ID = 0x61A7
	IDFileDescription ID = 0x467E
	IDFileName        ID = 0x466E
	IDFileMimeType    ID = 0x4660
	IDFileData        ID = 0x465C
	IDFileUID         ID = 0x46AE

	// Chapters.
	IDChapters         ID = 0x1043A770
	IDEditionEntry     ID = 0x45B9
	IDChapterAtom      ID = 0xB6
	IDChapterUID       ID = 0x73C4
	IDChapterTimeStart ID = 0x91
	IDChapterTimeEnd   ID = 0x92
	IDChapterDisplay   ID = 0x80
	IDChapString       ID = 0x85
	IDChapLanguage     ID = 0x437C

	// Tags.
	IDTags            ID = 0x1254C367
	IDTag             ID = 0x7373
	IDTargets         ID = 0x63C0
	IDTargetTypeValue ID = 0x68CA
	IDSimpleTag  ID = 0x67C8
	IDTagName    ID = 0x45A3
	IDTagLang    ID = 0x447A
	IDTagDefault ID = 0x4484
	IDTagString  ID = 0x4487
)

// ElementKind classifies an entry in the schema table by its EBML leaf
// type, or as a master.
type ElementKind int

const (
	KindMaster ElementKind = iota
	KindUint
	KindInt
	KindFloat
	KindString
	KindASCII
	KindBinary
	KindDate
)

// ElementDef describes one row of the Matroska element table: its name,
// id, and EBML type. Parent is the enclosing master's id, or 0 for
// top-level elements. This table is what spec.md §6/§9 calls the schema
// binding — the data a generator would consume to emit the leaf/master
// types in elements_leaf.go/elements_master.go. We hand-transcribed only
// the subset those files actually implement (every element group spec.md
// names); see DESIGN.md.
var elementTable = []ElementDef{
	{"CRC-32", IDCRC32, KindBinary, 0},
	{"Void", IDVoid, KindBinary, 0},

	{"EBML", IDEBML, KindMaster, 0},
	{"EBMLVersion", IDEBMLVersion, KindUint, IDEBML},
	{"EBMLReadVersion", IDEBMLReadVersion, KindUint, IDEBML},
	{"EBMLMaxIDLength", IDEBMLMaxIDLength, KindUint, IDEBML},
	{"EBMLMaxSizeLength", IDEBMLMaxSizeLength, KindUint, IDEBML},
	{"DocType", IDDocType, KindASCII, IDEBML},
	{"DocTypeVersion", IDDocTypeVersion, KindUint, IDEBML},
	{"DocTypeReadVersion", IDDocTypeReadVersion, KindUint, IDEBML},

	{"Segment", IDSegment, KindMaster, 0},

	{"SeekHead", IDSeekHead, KindMaster, IDSegment},
	{"Seek", IDSeek, KindMaster, IDSeekHead},
	{"SeekID", IDSeekID, KindBinary, IDSeek},
	{"SeekPosition", IDSeekPos, KindUint, IDSeek},

	{"Info", IDInfo, KindMaster, IDSegment},
	{"SegmentUID", IDSegmentUID, KindBinary, IDInfo},
	{"SegmentFilename", IDSegmentFilename, KindString, IDInfo},
	{"PrevUID", IDPrevUID, KindBinary, IDInfo},
	{"PrevFilename", IDPrevFilename, KindString, IDInfo},
	{"NextUID", IDNextUID, KindBinary, IDInfo},
	{"NextFilename", IDNextFilename, KindString, IDInfo},
	{"TimestampScale", IDTimestampScale, KindUint, IDInfo},
	{"Duration", IDDuration, KindFloat, IDInfo},
	{"DateUTC", IDDateUTC, KindDate, IDInfo},
	{"Title", IDTitle, KindString, IDInfo},
	{"MuxingApp", IDMuxingApp, KindString, IDInfo},
	{"WritingApp", IDWritingApp, KindString, IDInfo},

	{"Tracks", IDTracks, KindMaster, IDSegment},
	{"TrackEntry", IDTrackEntry, KindMaster, IDTracks},
	{"TrackNumber", IDTrackNumber, KindUint, IDTrackEntry},
	{"TrackUID", IDTrackUID, KindUint, IDTrackEntry},
	{"TrackType", IDTrackType, KindUint, IDTrackEntry},
	{"FlagEnabled", IDFlagEnabled, KindUint, IDTrackEntry},
	{"FlagDefault", IDFlagDefault, KindUint, IDTrackEntry},
	{"FlagForced", IDFlagForced, KindUint, IDTrackEntry},
	{"FlagLacing", IDFlagLacing, KindUint, IDTrackEntry},
	{"Name", IDTrackName, KindString, IDTrackEntry},
	{"Language", IDLanguage, KindASCII, IDTrackEntry},
	{"CodecID", IDCodecID, KindASCII, IDTrackEntry},
	{"CodecPrivate", IDCodecPrivate, KindBinary, IDTrackEntry},
	{"CodecName", IDCodecName, KindString, IDTrackEntry},
	{"Video", IDVideo, KindMaster, IDTrackEntry},
	{"Audio", IDAudio, KindMaster, IDTrackEntry},
	{"ContentEncodings", IDContentEncodings, KindMaster, IDTrackEntry},

	{"FlagInterlaced", IDFlagInterlaced, KindUint, IDVideo},
	{"PixelWidth", IDPixelWidth, KindUint, IDVideo},
	{"PixelHeight", IDPixelHeight, KindUint, IDVideo},
	{"DisplayWidth", IDDisplayWidth, KindUint, IDVideo},
	{"DisplayHeight", IDDisplayHeight, KindUint, IDVideo},

	{"SamplingFrequency", IDSamplingFrequency, KindFloat, IDAudio},
	{"OutputSamplingFrequency", IDOutputSamplingFrequency, KindFloat, IDAudio},
	{"Channels", IDChannels, KindUint, IDAudio},
	{"BitDepth", IDBitDepth, KindUint, IDAudio},

	{"ContentEncoding", IDContentEncoding, KindMaster, IDContentEncodings},
	{"ContentEncodingOrder", IDContentEncodingOrder, KindUint, IDContentEncoding},
	{"ContentEncodingScope", IDContentEncodingScope, KindUint, IDContentEncoding},
	{"ContentEncodingType", IDContentEncodingType, KindUint, IDContentEncoding},
	{"ContentCompression", IDContentCompression, KindMaster, IDContentEncoding},
	{"ContentCompAlgo", IDContentCompAlgo, KindUint, IDContentCompression},
	{"ContentCompSettings", IDContentCompSettings, KindBinary, IDContentCompression},

	{"Cluster", IDCluster, KindMaster, IDSegment},
	{"Timestamp", IDTimestamp, KindUint, IDCluster},
	{"SimpleBlock", IDSimpleBlock, KindBinary, IDCluster},
	{"BlockGroup", IDBlockGroup, KindMaster, IDCluster},
	{"Block", IDBlock, KindBinary, IDBlockGroup},
	{"BlockDuration", IDBlockDuration, KindUint, IDBlockGroup},
	{"ReferenceBlock", IDReferenceBlock, KindInt, IDBlockGroup},

	{"Cues", IDCues, KindMaster, IDSegment},
	{"CuePoint", IDCuePoint, KindMaster, IDCues},
	{"CueTime", IDCueTime, KindUint, IDCuePoint},
	{"CueTrackPositions", IDCueTrackPositions, KindMaster, IDCuePoint},
	{"CueTrack", IDCueTrack, KindUint, IDCueTrackPositions},
	{"CueClusterPosition", IDCueClusterPos, KindUint, IDCueTrackPositions},

	{"Attachments", IDAttachments, KindMaster, IDSegment},
	{"AttachedFile", IDAttachedFile, KindMaster, IDAttachments},
	{"FileDescription", IDFileDescription, KindString, IDAttachedFile},
	{"FileName", IDFileName, KindString, IDAttachedFile},
	{"FileMimeType", IDFileMimeType, KindASCII, IDAttachedFile},
	{"FileData", IDFileData, KindBinary, IDAttachedFile},
	{"FileUID", IDFileUID, KindUint, IDAttachedFile},

	{"Chapters", IDChapters, KindMaster, IDSegment},
	{"EditionEntry", IDEditionEntry, KindMaster, IDChapters},
	{"ChapterAtom", IDChapterAtom, KindMaster, IDEditionEntry},
	{"ChapterUID", IDChapterUID, KindUint, IDChapterAtom},
	{"ChapterTimeStart", IDChapterTimeStart, KindUint, IDChapterAtom},
	{"ChapterTimeEnd", IDChapterTimeEnd, KindUint, IDChapterAtom},
	{"ChapterDisplay", IDChapterDisplay, KindMaster, IDChapterAtom},
	{"ChapString", IDChapString, KindString, IDChapterDisplay},
	{"ChapLanguage", IDChapLanguage, KindASCII, IDChapterDisplay},

	{"Tags", IDTags, KindMaster, IDSegment},
	{"Tag", IDTag, KindMaster, IDTags},
	{"Targets", IDTargets, KindMaster, IDTag},
	{"TargetTypeValue", IDTargetTypeValue, KindUint, IDTargets},
	{"SimpleTag", IDSimpleTag, KindMaster, IDTag},
	{"TagName", IDTagName, KindString, IDSimpleTag},
	{"TagLanguage", IDTagLang, KindASCII, IDSimpleTag},
	{"TagDefault", IDTagDefault, KindUint, IDSimpleTag},
	{"TagString", IDTagString, KindString, IDSimpleTag},
}

// ElementDef is one row of the schema table.
type ElementDef struct {
	Name   string
	ID     ID
	Kind   ElementKind
	Parent ID
}

var elementByID = func() map[ID]ElementDef {
	m := make(map[ID]ElementDef, len(elementTable))
	for _, def := range elementTable {
		m[def.ID] = def
	}
	return m
}()

// LookupElement returns the schema definition for id, if known.
func LookupElement(id ID) (ElementDef, bool) {
	def, ok := elementByID[id]
	return def, ok
}
