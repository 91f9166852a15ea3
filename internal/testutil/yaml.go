package testutil

// DemoYAML is DemoHCL expressed in the YAML configuration format.
const DemoYAML = `
project:
  namespace: com.beco.demo
  application_id: com.beco.demo
  compile_sdk: 34
  min_sdk: 26
  target_sdk: 34
  version_code: 1
  version_name: "1.0"
  build_features:
    view_binding: true
  compile_options:
    source_compatibility: "1.8"
    target_compatibility: "1.8"
    jvm_target: "1.8"

plugins:
  - id: com.android.application
    version: 8.2.2
  - id: org.jetbrains.kotlin.android
    version: 1.9.22

variants:
  - name: debug
    minify_enabled: false
    debuggable: true
  - name: release
    minify_enabled: true
    shrink_resources: true
    debuggable: false
    proguard_files:
      - ${build_dir}/intermediates/default_proguard_files/global/proguard-android-optimize.txt
      - proguard-rules.pro
  - name: debugMinified
    init_with: debug
    minify_enabled: true
    shrink_resources: true
    debuggable: true
    proguard_files:
      - ${build_dir}/intermediates/default_proguard_files/global/proguard-android-optimize.txt
      - proguard-rules.pro
    matching_fallbacks: [debug]

dependencies:
  implementation:
    - androidx.core:core-ktx:1.12.0
    - androidx.appcompat:appcompat:1.7.1
    - com.google.android.material:material:1.12.0
    - androidx.constraintlayout:constraintlayout:2.2.1
    - com.becomap.sdk:becomap:2.0.3
  test_implementation:
    - junit:junit:4.13.2
  android_test_implementation:
    - androidx.test.ext:junit:1.2.1
    - androidx.test.espresso:espresso-core:3.6.1

lint:
  abort_on_error: true
  check_dependencies: true
  explain_issues: true
  enable: [UnusedResources, GradleDependency, NewerVersionAvailable, StopShip, HardcodedText]
  disable: [GoogleAppIndexingWarning, HardcodedDebugMode, AllowBackup]
  error: [StopShip, ShrinkWithoutMinify]
  warning: [HardcodedText, UnusedResources]
  informational: [ContentDescription]
  sarif_report: true
  text_report: false
  sarif_output: ${build_dir}/reports/lint/lint-results.sarif
`
