package matroska

// Schema-bound leaf elements: one-line wrappers over the generic leaf
// types (leaf.go) naming a fixed id, matching the way spec.md §9 describes
// a schema generator emitting these from elementTable. Only the element
// groups spec.md names (EBML header, Segment info, Tracks/Video/Audio,
// content encoding, Cluster framing, Cues, Attachments, Chapters, Tags)
// are hand-written here; the remaining published Matroska catalog is left
// as schema data in elementTable for a future generator, consistent with
// the teacher's own partial coverage.

// EBML header fields.

func NewEBMLVersion(v uint64) UintLeaf         { return newUintLeaf(IDEBMLVersion, v) }
func NewEBMLReadVersion(v uint64) UintLeaf     { return newUintLeaf(IDEBMLReadVersion, v) }
func NewEBMLMaxIDLength(v uint64) UintLeaf     { return newUintLeaf(IDEBMLMaxIDLength, v) }
func NewEBMLMaxSizeLength(v uint64) UintLeaf   { return newUintLeaf(IDEBMLMaxSizeLength, v) }
func NewDocType(v string) ASCIILeaf            { return newASCIILeaf(IDDocType, v) }
func NewDocTypeVersion(v uint64) UintLeaf      { return newUintLeaf(IDDocTypeVersion, v) }
func NewDocTypeReadVersion(v uint64) UintLeaf  { return newUintLeaf(IDDocTypeReadVersion, v) }

// Segment info fields.

func NewSegmentUID(v []byte) BinaryLeaf      { return newBinaryLeaf(IDSegmentUID, v) }
func NewSegmentFilename(v string) StringLeaf { return newStringLeaf(IDSegmentFilename, v) }
func NewPrevUID(v []byte) BinaryLeaf         { return newBinaryLeaf(IDPrevUID, v) }
func NewPrevFilename(v string) StringLeaf    { return newStringLeaf(IDPrevFilename, v) }
func NewNextUID(v []byte) BinaryLeaf         { return newBinaryLeaf(IDNextUID, v) }
func NewNextFilename(v string) StringLeaf    { return newStringLeaf(IDNextFilename, v) }
func NewTimestampScale(v uint64) UintLeaf    { return newUintLeaf(IDTimestampScale, v) }
func NewDuration(v float64) FloatLeaf        { return newFloatLeaf(IDDuration, 8, v) }
func NewDateUTC(v int64) DateLeaf            { return newDateLeaf(IDDateUTC, v) }
func NewTitle(v string) StringLeaf           { return newStringLeaf(IDTitle, v) }
func NewMuxingApp(v string) StringLeaf       { return newStringLeaf(IDMuxingApp, v) }
func NewWritingApp(v string) StringLeaf      { return newStringLeaf(IDWritingApp, v) }

// Seek fields.

func NewSeekID(v []byte) BinaryLeaf    { return newBinaryLeaf(IDSeekID, v) }
func NewSeekPosition(v uint64) UintLeaf { return newUintLeaf(IDSeekPos, v) }

// Track fields.

func NewTrackNumber(v uint64) UintLeaf     { return newUintLeaf(IDTrackNumber, v) }
func NewTrackUID(v uint64) UintLeaf        { return newUintLeaf(IDTrackUID, v) }
func NewTrackType(v uint64) UintLeaf       { return newUintLeaf(IDTrackType, v) }
func NewFlagEnabled(v uint64) UintLeaf     { return newUintLeaf(IDFlagEnabled, v) }
func NewFlagDefault(v uint64) UintLeaf     { return newUintLeaf(IDFlagDefault, v) }
func NewFlagForced(v uint64) UintLeaf      { return newUintLeaf(IDFlagForced, v) }
func NewFlagLacing(v uint64) UintLeaf      { return newUintLeaf(IDFlagLacing, v) }
func NewTrackName(v string) StringLeaf     { return newStringLeaf(IDTrackName, v) }
func NewLanguage(v string) ASCIILeaf       { return newASCIILeaf(IDLanguage, v) }
func NewCodecID(v string) ASCIILeaf        { return newASCIILeaf(IDCodecID, v) }
func NewCodecPrivate(v []byte) BinaryLeaf  { return newBinaryLeaf(IDCodecPrivate, v) }
func NewCodecName(v string) StringLeaf     { return newStringLeaf(IDCodecName, v) }

// Video settings.

func NewFlagInterlaced(v uint64) UintLeaf { return newUintLeaf(IDFlagInterlaced, v) }
func NewPixelWidth(v uint64) UintLeaf     { return newUintLeaf(IDPixelWidth, v) }
func NewPixelHeight(v uint64) UintLeaf    { return newUintLeaf(IDPixelHeight, v) }
func NewDisplayWidth(v uint64) UintLeaf   { return newUintLeaf(IDDisplayWidth, v) }
func NewDisplayHeight(v uint64) UintLeaf  { return newUintLeaf(IDDisplayHeight, v) }

// Audio settings.

func NewSamplingFrequency(v float64) FloatLeaf       { return newFloatLeaf(IDSamplingFrequency, 8, v) }
func NewOutputSamplingFrequency(v float64) FloatLeaf {
	return newFloatLeaf(IDOutputSamplingFrequency, 8, v)
}
func NewChannels(v uint64) UintLeaf  { return newUintLeaf(IDChannels, v) }
func NewBitDepth(v uint64) UintLeaf  { return newUintLeaf(IDBitDepth, v) }

// Content encoding.

func NewContentEncodingOrder(v uint64) UintLeaf { return newUintLeaf(IDContentEncodingOrder, v) }
func NewContentEncodingScope(v uint64) UintLeaf { return newUintLeaf(IDContentEncodingScope, v) }
func NewContentEncodingType(v uint64) UintLeaf  { return newUintLeaf(IDContentEncodingType, v) }
func NewContentCompAlgo(v uint64) UintLeaf      { return newUintLeaf(IDContentCompAlgo, v) }
func NewContentCompSettings(v []byte) BinaryLeaf {
	return newBinaryLeaf(IDContentCompSettings, v)
}

// Cluster framing.

func NewTimestamp(v uint64) UintLeaf       { return newUintLeaf(IDTimestamp, v) }
func NewBlockDuration(v uint64) UintLeaf   { return newUintLeaf(IDBlockDuration, v) }
func NewReferenceBlock(v int64) IntLeaf    { return newIntLeaf(IDReferenceBlock, v) }
func NewSimpleBlockRaw(v []byte) BinaryLeaf { return newBinaryLeaf(IDSimpleBlock, v) }
func NewBlockRaw(v []byte) BinaryLeaf       { return newBinaryLeaf(IDBlock, v) }

// Cues.

func NewCueTime(v uint64) UintLeaf           { return newUintLeaf(IDCueTime, v) }
func NewCueTrack(v uint64) UintLeaf          { return newUintLeaf(IDCueTrack, v) }
func NewCueClusterPosition(v uint64) UintLeaf { return newUintLeaf(IDCueClusterPos, v) }

// Attachments.

func NewFileDescription(v string) StringLeaf { return newStringLeaf(IDFileDescription, v) }
func NewFileName(v string) StringLeaf        { return newStringLeaf(IDFileName, v) }
func NewFileMimeType(v string) ASCIILeaf     { return newASCIILeaf(IDFileMimeType, v) }
func NewFileData(v []byte) BinaryLeaf        { return newBinaryLeaf(IDFileData, v) }
func NewFileUID(v uint64) UintLeaf           { return newUintLeaf(IDFileUID, v) }

// Chapters.

func NewChapterUID(v uint64) UintLeaf       { return newUintLeaf(IDChapterUID, v) }
func NewChapterTimeStart(v uint64) UintLeaf { return newUintLeaf(IDChapterTimeStart, v) }
func NewChapterTimeEnd(v uint64) UintLeaf   { return newUintLeaf(IDChapterTimeEnd, v) }
func NewChapString(v string) StringLeaf     { return newStringLeaf(IDChapString, v) }
func NewChapLanguage(v string) ASCIILeaf    { return newASCIILeaf(IDChapLanguage, v) }

// Tags.

func NewTargetTypeValue(v uint64) UintLeaf { return newUintLeaf(IDTargetTypeValue, v) }
func NewTagName(v string) StringLeaf     { return newStringLeaf(IDTagName, v) }
func NewTagLanguage(v string) ASCIILeaf  { return newASCIILeaf(IDTagLang, v) }
func NewTagDefault(v uint64) UintLeaf    { return newUintLeaf(IDTagDefault, v) }
func NewTagString(v string) StringLeaf   { return newStringLeaf(IDTagString, v) }
