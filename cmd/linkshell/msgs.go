package linkshell

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Create and inspect filesystem links"
	MsgRootLong = `linkshell creates hard links, symbolic links and directory junctions,
and inspects existing links. Junctions are Windows-only; hard links and
symbolic links work everywhere.

Link types:
  hardlink   a second directory entry for the same file data; files only,
             source and target must share a volume
  symlink    a path reference resolved transparently by most operations;
             files or directories, may span volumes
  junction   a Windows reparse point mounting one directory at another
             path; directories only`
	MsgInspectShort = "Report whether a path is a link and where it points"
	MsgInspectLong = `Inspect reports whether a path is a symbolic link, a directory junction
or a hard-linked file, and for symlinks and junctions whether the recorded
target still exists.`
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagType    = "Link type to create: hardlink, symlink or junction"
	MsgFlagSource  = "Existing path the link will point at"
	MsgFlagTarget  = "Path at which the link will be created"
	MsgFlagColor   = "Color output: auto, always or never"
	MsgFlagOutput  = "Inspect output format: text, json or yaml"

	// Error messages
	MsgErrNoOperation   = "no operation specified"
	MsgErrSourceMissing = "--source is required"
	MsgErrTargetMissing = "--target is required"

	// Examples
	MsgRootExample = `  # Hard link a file
  linkshell --type hardlink --source C:\data\report.txt --target C:\data\report_link.txt

  # Symlink a directory
  linkshell --type symlink --source ~/projects --target ~/current

  # Junction (Windows)
  linkshell --type junction --source C:\projects --target C:\projects_link

  # Inspect an existing link
  linkshell inspect C:\projects_link`
)
