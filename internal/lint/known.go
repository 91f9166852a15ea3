package lint

// sourceLevelIssues are Android lint ids that inspect sources and resources
// rather than build configuration. A policy may name them freely; they never
// produce findings here.
var sourceLevelIssues = []string{
	"AllowBackup",
	"Assert",
	"CommitTransaction",
	"ContentDescription",
	"DeviceAdmin",
	"DuplicateActivity",
	"ExtraTranslation",
	"GoogleAppIndexingWarning",
	"HardcodedText",
	"IconDensities",
	"IconDuplicates",
	"IconLocation",
	"IconMissingDensityFolder",
	"LogConditional",
	"MissingApplicationIcon",
	"MissingTranslation",
	"ObsoleteLintCustomCheck",
	"Overdraw",
	"PluralsCandidate",
	"Recycle",
	"SetTextI18n",
	"SmallSp",
	"SpUsage",
	"StringFormatMatches",
	"TextFields",
	"TypographyDashes",
	"TypographyEllipsis",
	"TypographyFractions",
	"TypographyQuotes",
	"UnusedIds",
	"UnusedNamespace",
	"UnusedResources",
	"ViewHolder",
	"Wakelock",
}
