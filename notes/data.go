package notes

import "studylab/models"

var syllabus = []models.Subject{
	{
		Name: "Physics",
		Semesters: []models.Semester{
			{
				Semester: 1,
				Chapters: []models.Chapter{
					{
						ID:    1,
						Title: "Physical Quantities and Units",
						Content: `
### 1.1 Base & Derived Quantities
- **Base Quantities**: Fundamental quantities (e.g., Length [$m$], Mass [$kg$], Time [$s$], Temperature [$K$], Current [$A$]).
- **Derived Quantities**: Combinations of base quantities (e.g., Velocity [$ms^{-1}$], Force [$kgms^{-2}$ or $N$]).

### 1.2 Dimensional Analysis
- Compare dimensions $[L], [M], [T]$ to verify equation consistency.

### 1.3 Scalars and Vectors
- **Scalar**: Magnitude only.
- **Vector**: Magnitude and direction. Resolution: $F_x = F \cos(\theta)$, $F_y = F \sin(\theta)$.
`,
					},
					{
						ID:    2,
						Title: "Kinematics of Linear Motion",
						Content: `
### 2.2 Equations of Motion
1. $v = u + at$
2. $s = ut + \frac{1}{2}at^2$
3. $v^2 = u^2 + 2as$
`,
					},
					{
						ID:    3,
						Title: "Dynamics",
						Content: `
### 3.1 Newton's Laws
- **First Law**: A body stays at rest or in uniform motion unless acted on by a net force.
- **Second Law**: $F = ma$, or more generally $F = \frac{dp}{dt}$.
- **Third Law**: Forces come in equal and opposite pairs.

### 3.2 Momentum & Impulse
- Momentum: $p = mv$. Impulse: $J = Ft = \Delta p$.
- Momentum is conserved in an isolated system.
`,
					},
				},
			},
			{
				Semester: 2,
				Chapters: []models.Chapter{
					{
						ID:    1,
						Title: "Electrostatics",
						Content: `
### 1.1 Coulomb's Law
- $F = \frac{kq_1q_2}{r^2}$ where $k = \frac{1}{4\pi\epsilon_0}$.

### 1.2 Electric Field
- Field strength: $E = \frac{F}{q}$. For a point charge: $E = \frac{kQ}{r^2}$.
- Potential: $V = \frac{kQ}{r}$; work done moving charge: $W = qV$.
`,
					},
					{
						ID:    2,
						Title: "Simple Harmonic Motion",
						Content: `
### 2.1 Defining Equation
- $a = -w^2x$; displacement $x = A\sin(wt)$.
- Period of spring-mass system: $T = 2\pi\sqrt{\frac{m}{k}}$; simple pendulum: $T = 2\pi\sqrt{\frac{l}{g}}$.

### 2.2 Energy in SHM
- Total energy: $E = \frac{1}{2}mw^2A^2$, exchanged between kinetic and potential.
`,
					},
				},
			},
		},
	},
}
