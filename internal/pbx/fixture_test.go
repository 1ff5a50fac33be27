package pbx

// sampleManifest is a trimmed but structurally faithful project.pbxproj:
// every section the engine touches, one Sources phase, the Views/ViewModels/
// Services group tree, and project- plus target-level Debug/Release
// configuration blocks.
const sampleManifest = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 56;
	objects = {

/* Begin PBXBuildFile section */
		AA0000000000000000000001 /* BookResultView.swift in Sources */ = {isa = PBXBuildFile; fileRef = 5A2B3C4D5E6F7A8B9C0D1E3F /* BookResultView.swift */; };
		AA0000000000000000000002 /* ScanCoverViewModel.swift in Sources */ = {isa = PBXBuildFile; fileRef = 8A2B3C4D5E6F7A8B9C0D1E3F /* ScanCoverViewModel.swift */; };
		AA0000000000000000000003 /* VirtualLibraryApp.swift in Sources */ = {isa = PBXBuildFile; fileRef = 1A2B3C4D5E6F7A8B9C0D1E3F /* VirtualLibraryApp.swift */; };
		AA0000000000000000000004 /* Library.swift in Sources */ = {isa = PBXBuildFile; fileRef = BE1E9ED82F2061F600B6EE93 /* Library.swift */; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
		5A2B3C4D5E6F7A8B9C0D1E3F /* BookResultView.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = BookResultView.swift; sourceTree = "<group>"; };
		8A2B3C4D5E6F7A8B9C0D1E3F /* ScanCoverViewModel.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = ScanCoverViewModel.swift; sourceTree = "<group>"; };
		1A2B3C4D5E6F7A8B9C0D1E3F /* VirtualLibraryApp.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = VirtualLibraryApp.swift; sourceTree = "<group>"; };
		BE1E9ED82F2061F600B6EE93 /* Library.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = Library.swift; sourceTree = "<group>"; };
		3B2B3C4D5E6F7A8B9C0D1E3F /* VirtualLibrary.app */ = {isa = PBXFileReference; explicitFileType = wrapper.application; includeInIndex = 0; path = VirtualLibrary.app; sourceTree = BUILT_PRODUCTS_DIR; };
/* End PBXFileReference section */

/* Begin PBXGroup section */
		6B2B3C4D5E6F7A8B9C0D1E3F /* VirtualLibraryApp */ = {
			isa = PBXGroup;
			children = (
				1A2B3C4D5E6F7A8B9C0D1E3F /* VirtualLibraryApp.swift */,
				8B2B3C4D5E6F7A8B9C0D1E3F /* Views */,
				0C2B3C4D5E6F7A8B9C0D1E3F /* ViewModels */,
				1C2B3C4D5E6F7A8B9C0D1E3F /* Services */,
			);
			path = VirtualLibraryApp;
			sourceTree = "<group>";
		};
		7B2B3C4D5E6F7A8B9C0D1E3F /* Products */ = {
			isa = PBXGroup;
			children = (
				3B2B3C4D5E6F7A8B9C0D1E3F /* VirtualLibrary.app */,
			);
			name = Products;
			sourceTree = "<group>";
		};
		8B2B3C4D5E6F7A8B9C0D1E3F /* Views */ = {
			isa = PBXGroup;
			children = (
				5A2B3C4D5E6F7A8B9C0D1E3F /* BookResultView.swift */,
			);
			path = Views;
			sourceTree = "<group>";
		};
		0C2B3C4D5E6F7A8B9C0D1E3F /* ViewModels */ = {
			isa = PBXGroup;
			children = (
				8A2B3C4D5E6F7A8B9C0D1E3F /* ScanCoverViewModel.swift */,
			);
			path = ViewModels;
			sourceTree = "<group>";
		};
		1C2B3C4D5E6F7A8B9C0D1E3F /* Services */ = {
			isa = PBXGroup;
			children = (
				BE1E9ED82F2061F600B6EE93 /* Library.swift */,
			);
			path = Services;
			sourceTree = "<group>";
		};
/* End PBXGroup section */

/* Begin PBXSourcesBuildPhase section */
		AB00000000000000000000F1 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
				AA0000000000000000000001 /* BookResultView.swift in Sources */,
				AA0000000000000000000002 /* ScanCoverViewModel.swift in Sources */,
				AA0000000000000000000003 /* VirtualLibraryApp.swift in Sources */,
				AA0000000000000000000004 /* Library.swift in Sources */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXSourcesBuildPhase section */

/* Begin XCBuildConfiguration section */
		CF0000000000000000000001 /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				ENABLE_TESTABILITY = YES;
				SWIFT_VERSION = 5.0;
			};
			name = Debug;
		};
		CF0000000000000000000002 /* Release */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				SWIFT_COMPILATION_MODE = wholemodule;
				SWIFT_VERSION = 5.0;
			};
			name = Release;
		};
		CF0000000000000000000003 /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				PRODUCT_NAME = "$(TARGET_NAME)";
			};
			name = Debug;
		};
		CF0000000000000000000004 /* Release */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				PRODUCT_NAME = "$(TARGET_NAME)";
			};
			name = Release;
		};
/* End XCBuildConfiguration section */
	};
	rootObject = 9900000000000000000000AA /* Project object */;
}
`
