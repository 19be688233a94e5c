// Package workflow describes the files pantheon-workflows provisions into a
// consuming project.
//
// # Managed Workflows
//
// The deployment workflows are shipped inside the Composer package under
// workflow-configuration/templates/ and copied verbatim into the project:
//   - deploy-to-dev.yml      - Deploys merged pull requests to Pantheon DEV
//   - deploy-multidev.yml    - Deploys pull requests to multidev environments
//
// They are owned by the package and replaced on every install and update.
//
// # Embedded Defaults
//
// The documentation files are rendered from templates embedded at compile
// time from the defaults/ directory:
//   - defaults/CHANGELOG-WORKFLOWS.md - Changelog seeded with the install date
//   - defaults/README.md              - Notes for .github/workflows/
//
// These are only written when the destination does not exist yet. Users are
// free to edit them afterwards.
package workflow
